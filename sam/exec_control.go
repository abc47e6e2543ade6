package sam

// jumpTarget resolves a JUMP/JUMPC/JSR operand (Int or Label) to a line
// index, grounded on original_source's sam_get_jump_target.
func jumpTarget(es *ExecutionState, instr *Instruction) (int, error) {
	switch instr.Operand.Tag {
	case OpInt:
		return int(instr.Operand.Int), nil
	case OpLabel:
		pa, ok := es.labels[instr.Operand.Label]
		if !ok {
			return 0, errUnknownIdent(instr.Operand.Label)
		}
		return int(pa.Line), nil
	default:
		return 0, ErrKind(KindOpType)
	}
}

func execJump(es *ExecutionState, instr *Instruction) error {
	target, err := jumpTarget(es, instr)
	if err != nil {
		return err
	}
	es.jumpTo(target)
	return nil
}

func execJumpC(es *ExecutionState, instr *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "JUMPC", c.Tag, TagInt)
	}
	if c.Int == 0 {
		return nil
	}
	target, err := jumpTarget(es, instr)
	if err != nil {
		return err
	}
	es.jumpTo(target)
	return nil
}

func execJumpInd(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagPa {
		return errStackInput("first", "JUMPIND", c.Tag, TagPa)
	}
	es.jumpTo(int(c.Pa.Line))
	return nil
}

func execRst(es *ExecutionState, instr *Instruction) error {
	return execJumpInd(es, instr)
}

func execJsr(es *ExecutionState, instr *Instruction) error {
	retAddr := PaCell(PA{Module: 0, Line: uint16(es.ip + 1)})
	if err := es.push(retAddr); err != nil {
		return err
	}
	target, err := jumpTarget(es, instr)
	if err != nil {
		return err
	}
	es.jumpTo(target)
	return nil
}

func execJsrInd(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagPa {
		return errStackInput("first", "JSRIND", c.Tag, TagPa)
	}
	retAddr := PaCell(PA{Module: 0, Line: uint16(es.ip + 1)})
	if err := es.push(retAddr); err != nil {
		return err
	}
	es.jumpTo(int(c.Pa.Line))
	return nil
}

// execSkip pops a relative-offset cell and jumps pc+offset. The original
// interpreter always returned NoSys from this opcode regardless of the
// computed target, effectively leaving it unusable; this reimplements
// it as a working relative jump, matching SKIP's documented role as an
// ordinary control opcode.
func execSkip(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "SKIP", c.Tag, TagInt)
	}
	es.jumpTo(es.ip + int(c.Int))
	return nil
}

func execLink(es *ExecutionState, _ *Instruction) error {
	return es.link()
}

func execUnlink(es *ExecutionState, _ *Instruction) error {
	return es.unlink()
}

func execStop(es *ExecutionState, _ *Instruction) error {
	if len(es.stack) > 1 {
		return ErrKind(KindFinalStack)
	}
	return ErrKind(KindStop)
}
