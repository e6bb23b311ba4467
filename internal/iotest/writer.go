// Package iotest provides IO helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that writes to the given testing.TB.
// Each line of a write is logged separately.
//
// Use it to route a program's log output into the test log:
//
//	logger := log.New(iotest.Writer(t), "", 0)
func Writer(t testing.TB) io.Writer {
	return &writer{t}
}

type writer struct{ t testing.TB }

func (w *writer) Write(b []byte) (int, error) {
	w.t.Helper()

	text := bytes.TrimSuffix(b, []byte("\n"))
	for _, line := range bytes.Split(text, []byte("\n")) {
		w.t.Logf("%s", line)
	}
	return len(b), nil
}
