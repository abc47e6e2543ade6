package sam

import "testing"

func mustParse(t *testing.T, source string) ([]Instruction, map[string]PA) {
	t.Helper()
	instrs, labels, err := parseProgram([]byte(source))
	assert(t, err == nil, "parse failed: %v", err)
	return instrs, labels
}

func TestParseSkipsShebangLine(t *testing.T) {
	instrs, _ := mustParse(t, "#!/usr/bin/env samiam\nPUSHIMM 1\nSTOP\n")
	assert(t, len(instrs) == 2, "expected 2 instructions, got %d", len(instrs))
	assert(t, instrs[0].Name() == "PUSHIMM", "expected PUSHIMM first, got %s", instrs[0].Name())
}

func TestParseSkipsDirectiveLine(t *testing.T) {
	instrs, _ := mustParse(t, ".module foo\nPUSHIMM 1\nSTOP\n")
	assert(t, len(instrs) == 2, "directive line should not produce an instruction, got %d", len(instrs))
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	instrs, _ := mustParse(t, "// a comment\n\nPUSHIMM 1 // trailing comment\nSTOP\n")
	assert(t, len(instrs) == 2, "expected 2 instructions, got %d", len(instrs))
}

func TestParseBareIdentLabel(t *testing.T) {
	instrs, labels := mustParse(t, "top: PUSHIMM 1\nJUMP top\nSTOP\n")
	pa, ok := labels["top"]
	assert(t, ok, "expected label 'top' to be recorded")
	assert(t, pa.Line == 0, "expected label at line 0, got %d", pa.Line)
	assert(t, len(instrs) == 3, "expected 3 instructions, got %d", len(instrs))
}

func TestParseQuotedStringLabel(t *testing.T) {
	_, labels := mustParse(t, "\"my label\": PUSHIMM 1\nSTOP\n")
	_, ok := labels["my label"]
	assert(t, ok, "expected quoted-string label to be recorded")
}

func TestParseStackedLabels(t *testing.T) {
	_, labels := mustParse(t, "a: b: PUSHIMM 1\nSTOP\n")
	apa, aok := labels["a"]
	bpa, bok := labels["b"]
	assert(t, aok && bok && apa == bpa, "expected both stacked labels to resolve to the same instruction")
}

func TestParseDuplicateLabelFails(t *testing.T) {
	_, _, err := parseProgram([]byte("a: PUSHIMM 1\na: PUSHIMM 2\nSTOP\n"))
	assert(t, err != nil, "expected duplicate label to fail parsing")
}

func TestParseUnknownOpcodeFails(t *testing.T) {
	_, _, err := parseProgram([]byte("NOTANOPCODE\nSTOP\n"))
	assert(t, err != nil, "expected unknown opcode to fail parsing")
	var perr *ParseError
	assert(t, errorsAsParseError(err, &perr), "expected a *ParseError")
	assert(t, perr.Line == 1, "expected error on line 1, got %d", perr.Line)
}

func errorsAsParseError(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if ok {
		*target = pe
	}
	return ok
}

func TestParseEscapedCharLiteral(t *testing.T) {
	instrs, _ := mustParse(t, "PUSHIMMCH '\\n'\nSTOP\n")
	assert(t, instrs[0].Operand.Int == int64('\n'), "expected decoded newline, got %d", instrs[0].Operand.Int)
}

func TestParseEscapedStringLiteral(t *testing.T) {
	instrs, _ := mustParse(t, "PUSHIMMSTR \"a\\tb\"\nSTOP\n")
	assert(t, instrs[0].Operand.Str == "a\tb", "expected decoded tab, got %q", instrs[0].Operand.Str)
}

func TestParseOperandTypePriorityIntBeforeLabel(t *testing.T) {
	instrs, _ := mustParse(t, "JUMP 3\nSTOP\nSTOP\nSTOP\n")
	assert(t, instrs[0].Operand.Tag == OpInt, "bare numeric token should parse as Int before Label, got %v", instrs[0].Operand.Tag)
}

func TestParseBadOperandTypeFails(t *testing.T) {
	_, _, err := parseProgram([]byte("PUSHIMM \"a string\"\nSTOP\n"))
	assert(t, err != nil, "expected string operand to be rejected for an Int-only opcode")
}
