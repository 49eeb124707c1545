// Package runner spawns dialog helper programs and reports how they exited.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result is what a finished helper process left behind.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports a zero exit status.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Output returns stdout without its trailing line break.
func (r Result) Output() string {
	return strings.TrimRight(r.Stdout, "\r\n")
}

// Runner runs a program to completion. A non-nil error means the program
// could not be started; a non-zero exit is reported through Result.
type Runner interface {
	Run(name string, args ...string) (Result, error)
}

// Func adapts a plain function to Runner.
type Func func(name string, args ...string) (Result, error)

func (f Func) Run(name string, args ...string) (Result, error) {
	return f(name, args...)
}

// Exec runs programs with os/exec. Stdin defaults to the process stdin so
// curses tools such as dialog can read the keyboard.
type Exec struct {
	Stdin io.Reader
	Env   []string
}

func (e Exec) Run(name string, args ...string) (Result, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = e.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("%s: failed to start: %w", name, err)
	}
	return res, nil
}
