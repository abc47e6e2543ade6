package sam

// readHeapString walks cells starting at ha until a NUL (Int 0)
// terminator, mirroring original_source's sam_es_string_get. Running
// off the end of the allocation before finding a terminator fails
// Segfault.
func readHeapString(es *ExecutionState, ha HA) (string, error) {
	var b []byte
	cur := ha
	for {
		if !es.heap.checkBounds(cur) {
			return "", errSegfault(HeapMA(cur))
		}
		c, _ := es.heap.get(cur)
		if c.Tag != TagInt || c.Int == 0 {
			break
		}
		b = append(b, byte(c.Int))
		cur.Offset++
	}
	return string(b), nil
}

func execRead(es *ExecutionState, _ *Instruction) error {
	var v int64
	if _, err := es.io.Scanf(StreamIn, "%d", &v); err != nil {
		return ErrKind(KindIO)
	}
	return es.push(IntCell(v))
}

func execReadF(es *ExecutionState, _ *Instruction) error {
	var v float64
	if _, err := es.io.Scanf(StreamIn, "%g", &v); err != nil {
		return ErrKind(KindIO)
	}
	return es.push(FloatCell(v))
}

func execReadCh(es *ExecutionState, _ *Instruction) error {
	var v string
	if _, err := es.io.Scanf(StreamIn, "%c", &v); err != nil || len(v) == 0 {
		return ErrKind(KindIO)
	}
	return es.push(IntCell(int64(v[0])))
}

func execReadStr(es *ExecutionState, _ *Instruction) error {
	line, ok := es.io.ReadLine(StreamIn)
	if !ok {
		return ErrKind(KindIO)
	}
	ha, err := es.heap.malloc(len(line) + 1)
	if err != nil {
		return err
	}
	for i := 0; i < len(line); i++ {
		es.heap.set(HA{Alloc: ha.Alloc, Offset: i}, IntCell(int64(line[i])))
	}
	es.heap.set(HA{Alloc: ha.Alloc, Offset: len(line)}, IntCell(0))
	es.journal.push(Change{Target: TargetHeap, Kind: ChangeAdd, MA: HeapMA(ha), Size: len(line) + 1})
	return es.push(HaCell(ha))
}

func execWrite(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "WRITE", c.Tag, TagInt)
	}
	if _, err := es.io.Printf(StreamOut, "%d", c.Int); err != nil {
		return ErrKind(KindIO)
	}
	return nil
}

func execWriteF(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagFloat {
		return errStackInput("first", "WRITEF", c.Tag, TagFloat)
	}
	if _, err := es.io.Printf(StreamOut, "%g", c.Float); err != nil {
		return ErrKind(KindIO)
	}
	return nil
}

func execWriteCh(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "WRITECH", c.Tag, TagInt)
	}
	if _, err := es.io.Printf(StreamOut, "%c", rune(c.Int)); err != nil {
		return ErrKind(KindIO)
	}
	return nil
}

func execWriteStr(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagHa {
		return errStackInput("first", "WRITESTR", c.Tag, TagHa)
	}
	s, err := readHeapString(es, c.Ha)
	if err != nil {
		return err
	}
	if _, err := es.io.Printf(StreamOut, "%s", s); err != nil {
		return ErrKind(KindIO)
	}
	return nil
}
