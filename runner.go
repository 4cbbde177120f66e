// Package areply provides the wire protocol and runner for symbol
// description agents.
package areply

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// Runner executes an agent with a normalized request.
type Runner interface {
	Run(ctx context.Context, req Request, opts ...RunOption) (outBytes, errBytes []byte, exitCode int, err error)
}

// NewRunner constructs a runner for the given agent config.
func NewRunner(cfg AgentConfig) (*ExecRunner, error) {
	if len(cfg.Cmd) == 0 {
		return nil, ErrEmptyCommand
	}

	return &ExecRunner{cmd: cfg.Cmd, useTTY: cfg.UseTTY}, nil
}

// ExecRunner invokes one agent command per request: the expanded command
// receives the request JSON on stdin and answers on stdout.
type ExecRunner struct {
	cmd    []string
	useTTY bool
}

// Run pipes req to the agent and captures its output. The raw stdout and
// stderr are always returned; on success stdout has also been decoded and
// checked against the output schema, so callers may hand it straight to
// DecodeResponse.
func (r *ExecRunner) Run(ctx context.Context, req Request, opts ...RunOption) ([]byte, []byte, int, error) {
	opts = append([]RunOption{WithTTY(r.useTTY)}, opts...)

	runOpts, err := resolveRunOptions(opts)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("resolve options: %w", err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	argv, cleanup, err := ExpandCommand(r.cmd, req)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("expand command: %w", err)
	}
	defer cleanup()

	outBytes, errBytes, exitCode, runErr := r.runWithOptions(ctx, argv, payload, runOpts)
	if runErr != nil {
		if exitCode != 0 {
			runErr = fmt.Errorf("exit code %d: %w", exitCode, errors.Join(ErrRunFailed, runErr))
		}

		return outBytes, errBytes, exitCode, runErr
	}

	_, raw, err := DecodeResponse(outBytes)
	if err != nil {
		return outBytes, errBytes, exitCode, fmt.Errorf("decode response: %w", err)
	}

	if err := ValidateResponseJSON(raw); err != nil {
		return outBytes, errBytes, exitCode, fmt.Errorf("validate response: %w", err)
	}

	return outBytes, errBytes, exitCode, nil
}

func (r *ExecRunner) runWithOptions(
	ctx context.Context,
	argv []string,
	stdin []byte,
	runOpts RunOptions,
) ([]byte, []byte, int, error) {
	if runOpts.tty {
		return runCommandWithTTY(
			ctx,
			argv,
			stdin,
			runOpts.stdout,
		)
	}

	return runCommand(
		ctx,
		argv,
		stdin,
		runOpts.stdout,
		runOpts.stderr,
	)
}

func runCommand(
	ctx context.Context,
	argv []string,
	stdin []byte,
	stdoutSink io.Writer,
	stderrSink io.Writer,
) ([]byte, []byte, int, error) {
	if len(argv) == 0 {
		return nil, nil, 0, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = bytes.NewReader(stdin)

	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	if stdoutSink != nil {
		cmd.Stdout = io.MultiWriter(&stdout, stdoutSink)
	} else {
		cmd.Stdout = &stdout
	}

	if stderrSink != nil {
		cmd.Stderr = io.MultiWriter(&stderr, stderrSink)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), err
		}

		return stdout.Bytes(), stderr.Bytes(), 0, fmt.Errorf("cmd run: %w", err)
	}

	return stdout.Bytes(), stderr.Bytes(), 0, nil
}

func runCommandWithTTY(
	ctx context.Context,
	argv []string,
	stdin []byte,
	stdoutSink io.Writer,
) ([]byte, []byte, int, error) {
	if len(argv) == 0 {
		return nil, nil, 0, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("start pty: %w", err)
	}

	var out bytes.Buffer

	var outWriter io.Writer = &out
	if stdoutSink != nil {
		outWriter = io.MultiWriter(&out, stdoutSink)
	}

	done := make(chan error, 1)

	go func() {
		_, err := io.Copy(outWriter, ptmx)
		done <- err
	}()

	if len(stdin) > 0 {
		if stdin[len(stdin)-1] != '\n' {
			stdin = append(append([]byte(nil), stdin...), '\n')
		}

		if _, err := ptmx.Write(stdin); err != nil {
			_ = ptmx.Close()
			_ = cmd.Wait()

			return out.Bytes(), nil, 0, fmt.Errorf("write stdin: %w", err)
		}
	}

	_, _ = ptmx.Write([]byte{4})
	err = cmd.Wait()
	_ = ptmx.Close()

	<-done

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return out.Bytes(), nil, exitErr.ExitCode(), err
		}

		return out.Bytes(), nil, 0, fmt.Errorf("cmd wait: %w", err)
	}

	return out.Bytes(), nil, 0, nil
}
