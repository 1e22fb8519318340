// Package sh runs external commands and streams their status output.
package sh

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Command describes one subprocess invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory of the subprocess.
	Dir string
	// Env entries are appended to the current process environment.
	Env []string
	// Label names the operation in diagnostics.
	Label string
	// LineFn, when set, receives every status line the process writes to
	// stdout or stderr while the process runs. Calls are serialized; lines
	// from each stream arrive in the order that stream produced them.
	LineFn func(line string)
}

// Result is the terminal outcome of a completed subprocess.
type Result struct {
	ExitCode int
	Stderr   string
}

// RunFunc is the signature of Run, so callers can substitute an executor.
type RunFunc func(ctx context.Context, cmd Command) (Result, error)

// Run executes the command and waits for it to finish. A nonzero exit is
// reported through Result, not through the error; the error is reserved for
// failures to run the command at all.
func Run(ctx context.Context, cmd Command) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return Result{}, failedTo(cmd, err)
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return Result{}, failedTo(cmd, err)
	}
	if err = c.Start(); err != nil {
		return Result{}, failedTo(cmd, err)
	}

	var errBuf bytes.Buffer
	lineFn := serialized(cmd.LineFn)
	var group errgroup.Group
	group.Go(func() error {
		return scan(stdout, lineFn, nil)
	})
	group.Go(func() error {
		return scan(stderr, lineFn, &errBuf)
	})
	scanErr := group.Wait()
	waitErr := c.Wait()

	res := Result{
		ExitCode: exitStatus(waitErr),
		Stderr:   errBuf.String(),
	}
	if waitErr != nil && !ran(waitErr) {
		return res, failedTo(cmd, waitErr)
	}
	if scanErr != nil {
		return res, failedTo(cmd, scanErr)
	}
	return res, nil
}

func failedTo(cmd Command, err error) error {
	label := cmd.Label
	if label == "" {
		label = fmt.Sprintf("%s %s", cmd.Name, strings.Join(cmd.Args, " "))
	}
	return fmt.Errorf("failed to run %s: %w", label, err)
}

// serialized guards the callback with a mutex: both scanner goroutines
// deliver through it, so callers see one line at a time.
func serialized(fn func(string)) func(string) {
	if fn == nil {
		return nil
	}
	var mu sync.Mutex
	return func(line string) {
		mu.Lock()
		defer mu.Unlock()
		fn(line)
	}
}

func scan(r io.Reader, fn func(string), capture *bytes.Buffer) error {
	sc := bufio.NewScanner(r)
	sc.Split(scanStatusLines)
	for sc.Scan() {
		line := sc.Text()
		if capture != nil {
			capture.WriteString(line)
			capture.WriteByte('\n')
		}
		if fn != nil {
			fn(line)
		}
	}
	return sc.Err()
}

// scanStatusLines splits on LF and CR so that in-place progress rewrites,
// which terminate with a carriage return only, still surface as lines.
func scanStatusLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		advance := i + 1
		if data[i] == '\r' && advance < len(data) && data[advance] == '\n' {
			advance++
		}
		return advance, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ran reports whether the process started and exited, as opposed to never
// having run (command missing or not executable).
func ran(err error) bool {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.Exited()
	}
	return false
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return 1
}
