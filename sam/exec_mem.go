package sam

// pushAbs dereferences ma (stack or heap) and pushes a copy of the cell
// found there, mirroring original_source's sam_pushabs: the one shared
// body behind PUSHIND, PUSHABS and PUSHOFF.
func pushAbs(es *ExecutionState, ma MA) error {
	if ma.IsStack {
		c, err := es.get(ma.Stack)
		if err != nil {
			return err
		}
		return es.push(c)
	}
	if !es.heap.checkBounds(ma.Heap) {
		return errSegfault(ma)
	}
	c, _ := es.heap.get(ma.Heap)
	return es.push(c)
}

// storeAbs writes c into ma (stack or heap), mirroring sam_storeabs: the
// shared body behind STOREIND, STOREABS and STOREOFF.
func storeAbs(es *ExecutionState, ma MA, c Cell) error {
	if ma.IsStack {
		return es.set(ma.Stack, c)
	}
	if !es.heap.checkBounds(ma.Heap) {
		return errSegfault(ma)
	}
	es.heap.set(ma.Heap, c)
	es.journal.push(Change{Target: TargetHeap, Kind: ChangeSet, MA: ma, Cell: c})
	return nil
}

func execMalloc(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "MALLOC", c.Tag, TagInt)
	}
	ha, err := es.heap.malloc(int(c.Int))
	if err != nil {
		return err
	}
	es.journal.push(Change{Target: TargetHeap, Kind: ChangeAdd, MA: HeapMA(ha), Size: es.heap.size(ha.Alloc)})
	return es.push(HaCell(ha))
}

func execFree(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagHa {
		return errStackInput("first", "FREE", c.Tag, TagHa)
	}
	size := es.heap.size(c.Ha.Alloc)
	if err := es.heap.free(c.Ha); err != nil {
		return errFree(c.Ha)
	}
	es.journal.push(Change{Target: TargetHeap, Kind: ChangeRemove, MA: HeapMA(c.Ha), Size: size})
	return nil
}

func execPushInd(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	switch c.Tag {
	case TagHa:
		return pushAbs(es, HeapMA(c.Ha))
	case TagSa:
		return pushAbs(es, StackMA(c.Sa))
	default:
		return errStackInput("first", "PUSHIND", c.Tag, TagSa)
	}
}

func execStoreInd(es *ExecutionState, _ *Instruction) error {
	val, err := es.pop()
	if err != nil {
		return err
	}
	addr, err := es.pop()
	if err != nil {
		return err
	}
	switch addr.Tag {
	case TagHa:
		return storeAbs(es, HeapMA(addr.Ha), val)
	case TagSa:
		return storeAbs(es, StackMA(addr.Sa), val)
	default:
		return errStackInput("first", "STOREIND", addr.Tag, TagSa)
	}
}

func execPushAbs(es *ExecutionState, instr *Instruction) error {
	return pushAbs(es, StackMA(SA(instr.Operand.Int)))
}

func execStoreAbs(es *ExecutionState, instr *Instruction) error {
	val, err := es.pop()
	if err != nil {
		return err
	}
	return storeAbs(es, StackMA(SA(instr.Operand.Int)), val)
}

func execPushOff(es *ExecutionState, instr *Instruction) error {
	return pushAbs(es, StackMA(es.fbr+SA(instr.Operand.Int)))
}

func execStoreOff(es *ExecutionState, instr *Instruction) error {
	val, err := es.pop()
	if err != nil {
		return err
	}
	return storeAbs(es, StackMA(es.fbr+SA(instr.Operand.Int)), val)
}
