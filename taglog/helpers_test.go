package taglog

import (
	"bytes"
	"testing"
)

// initBuffers points both sinks at fresh buffers and restores the real
// streams when the test ends.
func initBuffers(t *testing.T, mode ColorMode) (stdoutBuf, stderrBuf *bytes.Buffer) {
	t.Helper()
	stdoutBuf = &bytes.Buffer{}
	stderrBuf = &bytes.Buffer{}
	Init(Config{Stdout: stdoutBuf, Stderr: stderrBuf, Color: mode})
	t.Cleanup(func() { Init(Config{}) })
	return stdoutBuf, stderrBuf
}

// stubExit swaps the process-termination hook and records the codes it
// receives, so exit-tier tests can observe termination without dying.
func stubExit(t *testing.T) *[]int {
	t.Helper()
	var codes []int
	oldExit := osExit
	osExit = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { osExit = oldExit })
	return &codes
}
