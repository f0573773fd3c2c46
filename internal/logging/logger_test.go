package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// TestLoggingHelpers_WriteToBuffer verifies the package helper functions write
// formatted messages to the package-level logger `L`. The test swaps `L` with
// a buffer-backed logger and restores it afterwards.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	defer func() { L = prev }()

	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel(error): %v", err)
	}
	Warnf("hidden")
	Errorf("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("warn message should be filtered at error level; got: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("missing error output; got: %s", out)
	}

	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
