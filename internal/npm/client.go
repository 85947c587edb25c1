package npm

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes a program inside dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// StreamRunner runs programs with their output attached to the given writers.
type StreamRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r StreamRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Client wraps npm command-line calls.
type Client struct {
	Path   string
	Runner Runner
}

// NewClient creates a new npm client that streams to the terminal.
func NewClient(path string) *Client {
	if path == "" {
		path = "npm"
	}
	return &Client{Path: path, Runner: StreamRunner{Stdout: os.Stdout, Stderr: os.Stderr}}
}

// Install runs `npm install` in projectDir.
func (c *Client) Install(ctx context.Context, projectDir string) error {
	if err := checkProject(projectDir); err != nil {
		return err
	}
	return c.Runner.Run(ctx, projectDir, c.Path, "install")
}

// Build runs `npm run build`, or `npm run build:test` when test is set.
func (c *Client) Build(ctx context.Context, projectDir string, test bool) error {
	if err := checkProject(projectDir); err != nil {
		return err
	}
	script := "build"
	if test {
		script = "build:test"
	}
	return c.Runner.Run(ctx, projectDir, c.Path, "run", script)
}

func checkProject(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("project dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project dir %s is not a directory", dir)
	}
	return nil
}
