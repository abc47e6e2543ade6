package sam

// --- Immediates ---

func execPushImm(es *ExecutionState, instr *Instruction) error {
	return es.push(IntCell(instr.Operand.Int))
}

func execPushImmF(es *ExecutionState, instr *Instruction) error {
	return es.push(FloatCell(instr.Operand.Float))
}

func execPushImmCh(es *ExecutionState, instr *Instruction) error {
	return es.push(IntCell(instr.Operand.Int))
}

func execPushImmMA(es *ExecutionState, instr *Instruction) error {
	return es.push(SaCell(SA(instr.Operand.Int)))
}

func execPushImmPA(es *ExecutionState, instr *Instruction) error {
	if instr.Operand.Tag == OpLabel {
		pa, ok := es.labels[instr.Operand.Label]
		if !ok {
			return errUnknownIdent(instr.Operand.Label)
		}
		return es.push(PaCell(pa))
	}
	return es.push(PaCell(PA{Module: 0, Line: uint16(instr.Operand.Int)}))
}

// execPushImmStr allocates the literal's bytes (plus a NUL terminator)
// on the heap the first time this instruction executes, then pushes the
// resulting heap address. Subsequent executions (e.g. inside a loop)
// reuse the same allocation rather than leaking a fresh one per
// iteration.
func execPushImmStr(es *ExecutionState, instr *Instruction) error {
	if !instr.strReady {
		s := instr.Operand.Str
		ha, err := es.heap.malloc(len(s) + 1)
		if err != nil {
			return err
		}
		for i := 0; i < len(s); i++ {
			es.heap.set(HA{Alloc: ha.Alloc, Offset: i}, IntCell(int64(s[i])))
		}
		es.heap.set(HA{Alloc: ha.Alloc, Offset: len(s)}, IntCell(0))
		es.journal.push(Change{Target: TargetHeap, Kind: ChangeAdd, MA: HeapMA(ha), Size: len(s) + 1})
		instr.strHA = ha
		instr.strReady = true
	}
	return es.push(HaCell(instr.strHA))
}

// --- Registers ---

func execPushSP(es *ExecutionState, _ *Instruction) error {
	return es.push(SaCell(SA(len(es.stack))))
}

func execPushFBR(es *ExecutionState, _ *Instruction) error {
	return es.push(SaCell(es.fbr))
}

func execPopSP(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagSa {
		return errStackInput("first", "POPSP", c.Tag, TagSa)
	}
	return es.setSP(int(c.Sa))
}

func execPopFBR(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagSa {
		return errStackInput("first", "POPFBR", c.Tag, TagSa)
	}
	es.fbr = c.Sa
	return nil
}

// --- Stack manipulation ---

func execDup(es *ExecutionState, _ *Instruction) error {
	c, err := es.top()
	if err != nil {
		return err
	}
	return es.push(c)
}

func execSwap(es *ExecutionState, _ *Instruction) error {
	a, err := es.pop()
	if err != nil {
		return err
	}
	b, err := es.pop()
	if err != nil {
		return err
	}
	if err := es.push(a); err != nil {
		return err
	}
	return es.push(b)
}

func execAddSP(es *ExecutionState, instr *Instruction) error {
	return es.addsp(int(instr.Operand.Int))
}
