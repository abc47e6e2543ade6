package sam

import "math"

// epsilon is SAM_EPSILON from original_source/src/include/libsam/config.h:
// the platform DBL_EPSILON, used for relative-epsilon float comparison.
const epsilon = 2.220446049250313e-16

func floatEqual(a, b float64) bool {
	m := math.Abs(a)
	if math.Abs(b) > m {
		m = math.Abs(b)
	}
	return math.Abs(a-b) <= m*epsilon
}

// compareCells orders two same-tagged cells, returning -1/0/1. Float
// pairs use the epsilon-relative comparison; every other tag, including
// addresses, compares via its widened numeric representation.
func compareCells(a, b Cell) (int, error) {
	if a.Tag != b.Tag {
		return 0, errStackInput("second", "CMP", b.Tag, a.Tag)
	}
	if a.Tag == TagFloat {
		if floatEqual(a.Float, b.Float) {
			return 0, nil
		}
		if a.Float < b.Float {
			return -1, nil
		}
		return 1, nil
	}
	an, bn := a.numeric(), b.numeric()
	switch {
	case an < bn:
		return -1, nil
	case an > bn:
		return 1, nil
	default:
		return 0, nil
	}
}

func execCmp(es *ExecutionState, _ *Instruction) error {
	b, err := es.pop()
	if err != nil {
		return err
	}
	a, err := es.pop()
	if err != nil {
		return err
	}
	r, err := compareCells(a, b)
	if err != nil {
		return err
	}
	return es.push(IntCell(int64(r)))
}

func execCmpF(es *ExecutionState, _ *Instruction) error {
	a, b, err := popFloats(es, "CMPF")
	if err != nil {
		return err
	}
	r, _ := compareCells(FloatCell(a), FloatCell(b))
	return es.push(IntCell(int64(r)))
}

func execGreater(es *ExecutionState, _ *Instruction) error {
	b, err := es.pop()
	if err != nil {
		return err
	}
	a, err := es.pop()
	if err != nil {
		return err
	}
	r, err := compareCells(a, b)
	if err != nil {
		return err
	}
	return es.push(IntCell(boolToInt(r > 0)))
}

func execLess(es *ExecutionState, _ *Instruction) error {
	b, err := es.pop()
	if err != nil {
		return err
	}
	a, err := es.pop()
	if err != nil {
		return err
	}
	r, err := compareCells(a, b)
	if err != nil {
		return err
	}
	return es.push(IntCell(boolToInt(r < 0)))
}

func execEqual(es *ExecutionState, _ *Instruction) error {
	b, err := es.pop()
	if err != nil {
		return err
	}
	a, err := es.pop()
	if err != nil {
		return err
	}
	if a.Tag != b.Tag {
		return es.push(IntCell(0))
	}
	var eq bool
	switch a.Tag {
	case TagFloat:
		eq = floatEqual(a.Float, b.Float)
	case TagNone:
		eq = false
	default:
		eq = a.numeric() == b.numeric()
	}
	return es.push(IntCell(boolToInt(eq)))
}

func execIsNil(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "ISNIL", c.Tag, TagInt)
	}
	return es.push(IntCell(boolToInt(c.Int == 0)))
}

func execIsPos(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "ISPOS", c.Tag, TagInt)
	}
	return es.push(IntCell(boolToInt(c.Int > 0)))
}

func execIsNeg(es *ExecutionState, _ *Instruction) error {
	c, err := es.pop()
	if err != nil {
		return err
	}
	if c.Tag != TagInt {
		return errStackInput("first", "ISNEG", c.Tag, TagInt)
	}
	return es.push(IntCell(boolToInt(c.Int < 0)))
}
