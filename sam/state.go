package sam

// Options is the bitset of run-time switches an executor is constructed
// with (currently only Quiet).
type Options uint32

const (
	OptNone  Options = 0
	OptQuiet Options = 1 << iota
)

func (o Options) Quiet() bool { return o&OptQuiet != 0 }

// ExecutionState is the whole of one running (or finished) program: its
// decoded instructions and label table, its stack and heap, its
// registers, and the collaborators (journal, IO) the execute loop and
// embedders talk to. One state is owned by exactly one executor.
type ExecutionState struct {
	instrs []Instruction
	labels map[string]PA

	stack []Cell
	heap  *heap
	fbr   SA
	ip    int // index into instrs; PC().Line mirrors this

	btFlag  bool
	lastErr error

	options Options
	io      IO
	journal *journal

	// source is kept alive for the lifetime of the state because labels
	// and string literals may point into it.
	source []byte
}

// NewExecutionState parses source and returns a fresh, unstarted state.
// A parse failure returns (nil, err) with err unwrapped to *ParseError.
func NewExecutionState(source []byte, opts Options, io IO) (*ExecutionState, error) {
	instrs, labels, err := parseProgram(source)
	if err != nil {
		return nil, err
	}
	if io == nil {
		io = NewDefaultIO()
	}
	return &ExecutionState{
		instrs:  instrs,
		labels:  labels,
		heap:    newHeap(),
		fbr:     -1,
		options: opts,
		io:      io,
		journal: newJournal(),
		source:  source,
	}, nil
}

// --- Embedder API (mirrors what a scripting-language binding exposes) ---

// PC returns the current program counter.
func (es *ExecutionState) PC() PA {
	return PA{Module: 0, Line: uint16(es.ip)}
}

// FBR returns the current frame base register.
func (es *ExecutionState) FBR() SA { return es.fbr }

// SP returns the current stack pointer (one past the top element,
// equivalently the stack's length).
func (es *ExecutionState) SP() SA { return SA(len(es.stack)) }

// StackLen reports how many cells are currently on the stack.
func (es *ExecutionState) StackLen() int { return len(es.stack) }

// Backtrace reports whether a backtrace should be printed at
// termination.
func (es *ExecutionState) Backtrace() bool { return es.btFlag }

// NextChange drains the oldest undrained journal entry, if any.
func (es *ExecutionState) NextChange() (Change, bool) { return es.journal.pop() }

// Done reports whether the program counter has run off the end of the
// instruction stream - the "ran to completion with no STOP" case.
func (es *ExecutionState) Done() bool { return es.ip >= len(es.instrs) }

// Step executes exactly one instruction and advances the program
// counter: fetch, dispatch to the opcode's handler, advance. It returns
// the handler's error verbatim (nil on OK); callers drive the
// surrounding while-condition and post-loop warnings themselves (see
// run.go, and any step-iterator style binding built on top of this).
func (es *ExecutionState) Step() error {
	instr := &es.instrs[es.ip]
	err := instr.Op.handler(es, instr)
	if err == nil {
		es.ip++
	} else if !IsStop(err) {
		es.btFlag = true
	}
	es.lastErr = err
	return err
}

// jumpTo sets the program counter such that the next post-increment in
// Step lands exactly on target - control-transfer handlers call this
// instead of mutating es.ip directly.
func (es *ExecutionState) jumpTo(target int) {
	es.ip = target - 1
}
