package areply

import (
	"errors"
	"io"
)

// RunOptions defines the configuration for running an agent.
type RunOptions struct {
	stdout io.Writer
	stderr io.Writer
	tty    bool
}

// RunOption configures runtime behavior for invoking an agent.
type RunOption func(*RunOptions)

// WithTTY enables or disables pseudo-terminal execution.
func WithTTY(enabled bool) RunOption {
	return func(o *RunOptions) {
		o.tty = enabled
	}
}

// WithStdout mirrors the agent's stdout to w while it runs.
func WithStdout(w io.Writer) RunOption {
	return func(o *RunOptions) {
		o.stdout = w
	}
}

// WithStderr mirrors the agent's stderr to w while it runs.
func WithStderr(w io.Writer) RunOption {
	return func(o *RunOptions) {
		o.stderr = w
	}
}

func defaultRunOptions() RunOptions {
	return RunOptions{
		stdout: io.Discard,
		stderr: io.Discard,
		tty:    false,
	}
}

func resolveRunOptions(opts []RunOption) (RunOptions, error) {
	out := defaultRunOptions()
	for _, opt := range opts {
		opt(&out)
	}

	if out.stdout == nil {
		return RunOptions{}, errors.New("stdout writer is required")
	}

	if out.stderr == nil {
		return RunOptions{}, errors.New("stderr writer is required")
	}

	return out, nil
}
