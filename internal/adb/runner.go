package adb

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external program and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError is returned when a subprocess fails or writes to stderr.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	cmd := strings.Join(e.Args, " ")
	switch {
	case e.Stderr != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v\n%s", cmd, e.Err, e.Stderr)
	case e.Stderr != "":
		return fmt.Sprintf("%s: %s", cmd, e.Stderr)
	default:
		return fmt.Sprintf("%s: %v", cmd, e.Err)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs programs through os/exec, keeping stdout and stderr apart.
type ExecRunner struct{}

// Run starts name with args and waits for it. Any stderr output other than
// adb daemon startup chatter is treated as a failure.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	msg := cleanStderr(stderr.String())
	if err != nil || msg != "" {
		return stdout.Bytes(), &CommandError{
			Args:   append([]string{name}, args...),
			Stderr: msg,
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// cleanStderr drops the "* daemon not running; starting now" lines adb
// prints whenever it has to spawn its server.
func cleanStderr(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "* daemon") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
