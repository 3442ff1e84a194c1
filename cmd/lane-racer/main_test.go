package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestRunWithoutTerminalClosesLog(t *testing.T) {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is a terminal")
	}
	inTempDir(t)

	debug := *debugFlag
	*debugFlag = true
	t.Cleanup(func() { *debugFlag = debug })

	if code := run(); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	// Writes after run returns must be dropped by the closed log file
	log.Print("after run")

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "stdout is not a terminal") {
		t.Errorf("Log file missing startup failure, got %q", text)
	}
	if strings.Contains(text, "after run") {
		t.Error("Log file still open after run returned")
	}
}
