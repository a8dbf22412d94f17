// Package git runs the version-control commands behind publish and
// site-root detection.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git subcommand in dir and returns its combined
// output. It exists so the publish sequence can be tested against a
// fake without touching a real repository.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

// CommandError reports a git command that exited non-zero, with the
// command line and its captured output attached verbatim.
type CommandError struct {
	Args     []string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// ExecRunner runs git via os/exec.
type ExecRunner struct{}

// Run executes git with the given arguments in dir. Stdout and stderr
// are captured together so credential and remote errors reach the user.
func (ExecRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return string(output), &CommandError{
			Args:     args,
			ExitCode: exitCode,
			Output:   string(output),
		}
	}
	return string(output), nil
}

// Toplevel returns the root of the git repository containing dir, or
// ok=false when dir is not inside a repository.
func Toplevel(dir string) (string, bool) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	// Suppress stderr to avoid noise when not in a git repository
	cmd.Stderr = nil

	output, err := cmd.Output()
	if err != nil {
		return "", false
	}
	root := strings.TrimSpace(string(output))
	return root, root != ""
}

// Publisher deploys card changes by staging, committing, and pushing
// the card file in the site repository.
type Publisher struct {
	Runner Runner
	Dir    string
}

// Publish runs git add, commit, and push in sequence. Each step must
// succeed before the next runs; the first failure aborts the sequence
// and is returned to the caller. No rollback is attempted, so a failed
// push leaves the commit in place.
func (p Publisher) Publish(relPath, message string) error {
	steps := [][]string{
		{"add", relPath},
		{"commit", "-m", message},
		{"push"},
	}
	for _, args := range steps {
		if _, err := p.Runner.Run(p.Dir, args...); err != nil {
			return err
		}
	}
	return nil
}
