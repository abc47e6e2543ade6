package sam

// Result is the outcome of a completed program: the coerced process
// exit value plus whether a backtrace was requested along the way.
type Result struct {
	ExitCode  int64
	Backtrace bool
}

// Run drives the fetch-dispatch-advance loop to completion: it steps
// the state until STOP, an unrecovered error, or the program counter
// runs off the end of the instruction stream, then prints
// diagnostics/backtrace and coerces the stack bottom to an exit code.
func Run(es *ExecutionState) Result {
	var lastErr error
	for !es.Done() {
		lastErr = es.Step()
		if lastErr != nil {
			break
		}
	}
	return finish(es, lastErr)
}

// RunDebug is the single-step counterpart to Run, grounded on the
// teacher's RunProgramDebugMode: it prints the full program listing up
// front, then drives the same loop Run does but through DebugStep, so
// every instruction's register/stack state is printed as it executes.
func RunDebug(es *ExecutionState) Result {
	es.PrintProgram(es.io)
	var lastErr error
	for !es.Done() {
		lastErr = es.DebugStep(es.io)
		if lastErr != nil {
			break
		}
	}
	return finish(es, lastErr)
}

// finish applies the post-loop diagnostics (missing-STOP warning,
// backtrace, empty-stack warning) common to Run and RunDebug and
// coerces the stack bottom to an exit code.
func finish(es *ExecutionState, lastErr error) Result {
	if lastErr != nil && !IsStop(lastErr) {
		es.warn("%s", lastErr.Error())
	}
	if lastErr == nil && es.Done() {
		// Fell off the end without ever hitting STOP.
		es.warn("warning: final instruction must be STOP.")
		es.btFlag = true
	}
	if es.btFlag && !es.options.Quiet() {
		es.io.Backtrace(es)
	}

	if len(es.stack) == 0 {
		es.warn("warning: stack is empty at termination.")
		return Result{ExitCode: -1, Backtrace: es.btFlag}
	}
	bottom := es.stack[0]
	if bottom.Tag != TagInt {
		es.warn("warning: expected integer at bottom of stack, found %s.", bottom.Tag)
	}
	return Result{ExitCode: bottom.numeric(), Backtrace: es.btFlag}
}
