package sam

import "fmt"

// formatInstruction renders one instruction the way a backtrace or a
// program listing would: its line number, mnemonic and operand.
func formatInstruction(es *ExecutionState, line int, prefix string) string {
	if line < 0 || line >= len(es.instrs) {
		return ""
	}
	instr := es.instrs[line]
	operand := ""
	switch instr.Operand.Tag {
	case OpInt:
		operand = fmt.Sprintf(" %d", instr.Operand.Int)
	case OpFloat:
		operand = fmt.Sprintf(" %g", instr.Operand.Float)
	case OpChar:
		operand = fmt.Sprintf(" '%c'", rune(instr.Operand.Int))
	case OpLabel:
		operand = " " + instr.Operand.Label
	case OpStr:
		operand = fmt.Sprintf(" %q", instr.Operand.Str)
	}
	return fmt.Sprintf("%s %d: %s%s", prefix, line, instr.Name(), operand)
}

// printBacktrace renders the default backtrace: the failing instruction,
// the current registers, and the live stack, in the register/stack dump
// style GVM's printCurrentState uses for its debug-mode output.
func printBacktrace(es *ExecutionState, io IO) {
	line := es.ip
	if instr := formatInstruction(es, line, " at instruction:"); instr != "" {
		io.Printf(StreamErr, "%s\n", instr)
	}
	io.Printf(StreamErr, "  pc> %d  fbr> %d\n", es.ip, es.fbr)
	io.Printf(StreamErr, "  stack>")
	for _, c := range es.stack {
		io.Printf(StreamErr, " %s", c)
	}
	io.Printf(StreamErr, "\n")
}

// PrintProgram lists every parsed instruction, one per line - used by
// the CLI's debug/disassemble mode.
func (es *ExecutionState) PrintProgram(io IO) {
	for i := range es.instrs {
		io.Printf(StreamOut, "%s\n", formatInstruction(es, i, " "))
	}
}

// DebugStep advances exactly one instruction and reports the current
// state the way GVM's RunProgramDebugMode prints between steps,
// generalized to this machine's registers.
func (es *ExecutionState) DebugStep(io IO) error {
	err := es.Step()
	if instr := formatInstruction(es, es.ip, "  next instruction>"); instr != "" {
		io.Printf(StreamOut, "%s\n", instr)
	}
	io.Printf(StreamOut, "  fbr> %d\n", es.fbr)
	io.Printf(StreamOut, "  stack>")
	for _, c := range es.stack {
		io.Printf(StreamOut, " %s", c)
	}
	io.Printf(StreamOut, "\n")
	return err
}
