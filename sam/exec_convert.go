package sam

import "math"

func execFTOI(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagFloat {
		return errTypeConvert(TagInt, c.Tag, TagFloat)
	}
	return es.push(IntCell(int64(math.Floor(c.Float))))
}

func execFTOIR(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagFloat {
		return errTypeConvert(TagInt, c.Tag, TagFloat)
	}
	v := c.Float
	if v >= 0 {
		v = math.Floor(v + 0.5)
	} else {
		v = math.Ceil(v - 0.5)
	}
	return es.push(IntCell(int64(v)))
}

func execITOF(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errTypeConvert(TagFloat, c.Tag, TagInt)
	}
	return es.push(FloatCell(float64(c.Int)))
}

// patoi converts a program address to its line number. Only a Pa-tagged
// cell is accepted; anything else fails TypeConvert (see
// original_source/src/libsam/opcode.c's patoi implementation).
func execPatoi(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagPa {
		return errTypeConvert(TagInt, c.Tag, TagPa)
	}
	return es.push(IntCell(int64(c.Pa.Line)))
}
