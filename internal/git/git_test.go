package git

import (
	"errors"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

// fakeRunner records invocations and fails on a chosen subcommand.
type fakeRunner struct {
	calls  [][]string
	failOn string
}

func (r *fakeRunner) Run(dir string, args ...string) (string, error) {
	r.calls = append(r.calls, args)
	if r.failOn != "" && args[0] == r.failOn {
		return "", &CommandError{Args: args, ExitCode: 1, Output: "fatal: " + r.failOn + " failed"}
	}
	return "", nil
}

func TestPublishRunsStepsInOrder(t *testing.T) {
	runner := &fakeRunner{}
	p := Publisher{Runner: runner, Dir: "/site"}

	if err := p.Publish("_data/cards.yml", "Update cards"); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}

	want := [][]string{
		{"add", "_data/cards.yml"},
		{"commit", "-m", "Update cards"},
		{"push"},
	}
	if !reflect.DeepEqual(runner.calls, want) {
		t.Errorf("calls = %v, want %v", runner.calls, want)
	}
}

func TestPublishAbortsWhenCommitFails(t *testing.T) {
	runner := &fakeRunner{failOn: "commit"}
	p := Publisher{Runner: runner, Dir: "/site"}

	err := p.Publish("_data/cards.yml", "Update cards")

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Publish error = %v, want CommandError", err)
	}
	if cmdErr.Args[0] != "commit" {
		t.Errorf("failing step = %v, want commit", cmdErr.Args)
	}

	// The push step must not run after a failed commit.
	if len(runner.calls) != 2 {
		t.Errorf("expected 2 calls (add, commit), got %v", runner.calls)
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Args:     []string{"commit", "-m", "msg"},
		ExitCode: 128,
		Output:   "fatal: nothing to commit\n",
	}

	msg := err.Error()
	if !strings.Contains(msg, "commit") || !strings.Contains(msg, "128") || !strings.Contains(msg, "nothing to commit") {
		t.Errorf("error message missing command, status, or output: %q", msg)
	}
}

func TestExecRunnerFailure(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("Skipping test: git not available: %v", err)
	}

	tmpDir := t.TempDir()

	// rev-parse outside a repository exits non-zero.
	_, err := ExecRunner{}.Run(tmpDir, "rev-parse", "--show-toplevel")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Run error = %v, want CommandError", err)
	}
	if cmdErr.ExitCode == 0 {
		t.Errorf("expected non-zero exit code, got %d", cmdErr.ExitCode)
	}
}

func TestToplevel(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("Skipping test: git not available: %v", err)
	}

	tmpDir := t.TempDir()
	if _, ok := Toplevel(tmpDir); ok {
		t.Error("expected no toplevel for a plain directory")
	}

	cmd := exec.Command("git", "init")
	cmd.Dir = tmpDir
	if err := cmd.Run(); err != nil {
		t.Skipf("Skipping test: git init failed: %v", err)
	}

	root, ok := Toplevel(tmpDir)
	if !ok {
		t.Fatal("expected toplevel inside a git repository")
	}
	if root == "" {
		t.Error("expected non-empty toplevel path")
	}
}
