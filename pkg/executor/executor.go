package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultMaxOutput caps captured stdout.
const DefaultMaxOutput = 50 << 20

// ErrOutputTooLarge is returned when a command writes more than the configured cap.
var ErrOutputTooLarge = errors.New("command output exceeds limit")

type implExecutor struct {
	maxOutput int64
}

// Option configures the executor
type Option func(*implExecutor)

// WithMaxOutput sets the stdout cap in bytes
func WithMaxOutput(n int64) Option {
	return func(e *implExecutor) {
		if n > 0 {
			e.maxOutput = n
		}
	}
}

// New creates a new Executor instance
func New(opts ...Option) Executor {
	e := &implExecutor{maxOutput: DefaultMaxOutput}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs name with args and returns its stdout
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	stdout := &cappedBuffer{limit: e.maxOutput}
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stdout.exceeded {
			return "", fmt.Errorf("command '%s': %w", name, ErrOutputTooLarge)
		}
		// Include stderr in error message for debugging
		stderrStr := strings.TrimSpace(stderr.String())
		if stderrStr != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, stderrStr)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	if stdout.exceeded {
		return "", fmt.Errorf("command '%s': %w", name, ErrOutputTooLarge)
	}

	return stdout.String(), nil
}

// cappedBuffer keeps at most limit bytes and fails any write past it.
// The buffer is a named field so io.Copy cannot bypass Write via ReadFrom.
type cappedBuffer struct {
	buf      bytes.Buffer
	limit    int64
	exceeded bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if int64(b.buf.Len()+len(p)) > b.limit {
		b.exceeded = true
		return 0, io.ErrShortWrite
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) Len() int {
	return b.buf.Len()
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
