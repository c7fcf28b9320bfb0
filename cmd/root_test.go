package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestHelpFlagShowsUsageAndExitsZero(t *testing.T) {
	var code int
	root := NewRootCommand(&code)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"-h"})

	if err := root.Execute(); err != nil {
		t.Fatalf("help must not fail, got %v", err)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Errorf("usage missing from stdout, got %q", out.String())
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestMissingProgramIsAnError(t *testing.T) {
	var code int
	root := NewRootCommand(&code)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{})

	if err := root.Execute(); err == nil {
		t.Fatal("expected an error when no program is given")
	}
	if !strings.Contains(errOut.String(), "Usage:") {
		t.Errorf("usage missing from stderr, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "Usage:") {
		t.Errorf("usage leaked to stdout: %q", out.String())
	}
}

func TestUnknownFlagIsAnError(t *testing.T) {
	var code int
	root := NewRootCommand(&code)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--bogus", "true"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestChildExitCodeBecomesOurs(t *testing.T) {
	var code int
	root := NewRootCommand(&code)
	root.SetArgs([]string{"sh", "-c", "exit 7"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestFlagsAfterProgramBelongToChild(t *testing.T) {
	var code int
	root := NewRootCommand(&code)
	// -v is ours; -c must reach sh untouched.
	root.SetArgs([]string{"-v", "sh", "-c", "exit 3"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestSpawnFailureExitsOne(t *testing.T) {
	var code int
	root := NewRootCommand(&code)
	root.SetArgs([]string{"tinit-no-such-program"})

	if err := root.Execute(); err != nil {
		t.Fatalf("spawn failure must map to an exit code, not a usage error, got %v", err)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestVersionFlag(t *testing.T) {
	var code int
	root := NewRootCommand(&code)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version must not fail, got %v", err)
	}
	if out.Len() == 0 {
		t.Error("version output missing")
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}
