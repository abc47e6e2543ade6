package sam

import (
	"os"
	"testing"
)

func runTestdata(t *testing.T, name string) Result {
	t.Helper()
	source, err := os.ReadFile("testdata/" + name)
	assert(t, err == nil, "reading testdata/%s failed: %v", name, err)
	r, _, _ := runSource(t, string(source))
	return r
}

func TestTestdataAdd(t *testing.T) {
	r := runTestdata(t, "add.sam")
	assert(t, r.ExitCode == 7, "expected 7, got %d", r.ExitCode)
}

func TestTestdataHeapRoundtrip(t *testing.T) {
	r := runTestdata(t, "heap_roundtrip.sam")
	assert(t, r.ExitCode == 7, "expected 7, got %d", r.ExitCode)
}

func TestTestdataFactorial(t *testing.T) {
	r := runTestdata(t, "factorial.sam")
	assert(t, r.ExitCode == 120, "expected 5! == 120, got %d", r.ExitCode)
	assert(t, !r.Backtrace, "expected a clean run with no backtrace")
}
