package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/metalagman/areply"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var exitFn = os.Exit

const defaultTimeout = 30 * time.Second

type agentOptions struct {
	agent          string
	scope          string
	promptTemplate string
	input          string
	inputFile      string
	extraArgs      []string
	useTTY         bool
	debug          bool
	timeout        time.Duration
}

func newInvokeCmd() *cobra.Command {
	opts := &agentOptions{}
	cmd := &cobra.Command{
		Use:   "invoke <cmd> [args...]",
		Short: "Invoke a description agent command with normalized JSON I/O",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentCmd := append([]string{args[0]}, args[1:]...)
			if len(opts.extraArgs) > 0 {
				agentCmd = append(agentCmd, opts.extraArgs...)
			}

			return runAgent(cmd, agentCmd, opts)
		},
	}

	addInvokeFlags(cmd, opts)

	return cmd
}

func addInvokeFlags(cmd *cobra.Command, opts *agentOptions) {
	cmd.Flags().StringVar(&opts.agent, "agent", "default", "agent name recorded in the request")
	cmd.Flags().StringVar(&opts.scope, "scope", areply.DefaultScope, "scope label recorded in the request")
	cmd.Flags().StringVar(&opts.promptTemplate, "prompt-template", "", "prompt template rendered against the request input")
	cmd.Flags().StringVar(&opts.input, "input", "", "request input payload (JSON)")
	cmd.Flags().StringVar(&opts.inputFile, "input-file", "", "path to a request input payload file")
	cmd.Flags().StringArrayVar(&opts.extraArgs, "extra-args", nil, "extra args to pass to the agent command")
	cmd.Flags().BoolVar(&opts.useTTY, "tty", false, "run the agent in a pseudo-terminal")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log invocation details and forward agent output to stderr")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "timeout for the agent execution")
}

func runAgent(cmd *cobra.Command, agentCmd []string, opts *agentOptions) error {
	cfg, err := buildRunConfig(agentCmd, opts)
	if err != nil {
		return err
	}

	return runAndEmit(cmd.Context(), cfg)
}

// resolveInput loads the request input payload from --input or --input-file.
// Both absent means an empty payload: the downstream defaulting rules
// still describe it.
func resolveInput(opts *agentOptions) (areply.Input, error) {
	var input areply.Input

	raw := opts.input
	if opts.inputFile != "" {
		if raw != "" {
			return input, fmt.Errorf("use --input or --input-file, not both")
		}

		data, err := os.ReadFile(opts.inputFile)
		if err != nil {
			return input, fmt.Errorf("read input file: %w", err)
		}

		raw = string(data)
	}

	if strings.TrimSpace(raw) == "" {
		return input, nil
	}

	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return input, fmt.Errorf("parse input JSON: %w", err)
	}

	return input, nil
}

type runConfig struct {
	runner  areply.Runner
	req     areply.Request
	useTTY  bool
	debug   bool
	timeout time.Duration
}

func buildRunConfig(agentCmd []string, opts *agentOptions) (runConfig, error) {
	input, err := resolveInput(opts)
	if err != nil {
		return runConfig{}, err
	}

	runner, err := areply.NewRunner(areply.AgentConfig{
		Cmd:    agentCmd,
		UseTTY: opts.useTTY,
	})
	if err != nil {
		return runConfig{}, err
	}

	req := areply.NewRequest(opts.agent, input)
	if opts.scope != "" {
		req.Scope = opts.scope
	}
	req.Prompt = areply.RenderPrompt(opts.promptTemplate, input)

	return runConfig{
		runner:  runner,
		req:     req,
		useTTY:  opts.useTTY,
		debug:   opts.debug,
		timeout: opts.timeout,
	}, nil
}

func runAndEmit(ctx context.Context, cfg runConfig) error {
	logger := newLogger(cfg.debug)

	runOpts := make([]areply.RunOption, 0)
	if cfg.useTTY {
		runOpts = append(runOpts, areply.WithTTY(true))
	}

	if cfg.debug {
		runOpts = append(runOpts, areply.WithStdout(os.Stderr), areply.WithStderr(os.Stderr))
	}

	if cfg.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	logger.Debug().
		Str("run_id", cfg.req.RunID).
		Str("agent", cfg.req.Agent).
		Str("scope", cfg.req.Scope).
		Msg("invoking agent")

	started := time.Now()
	outBytes, errBytes, exitCode, err := cfg.runner.Run(ctx, cfg.req, runOpts...)

	logger.Debug().
		Int("exit_code", exitCode).
		Dur("elapsed", time.Since(started)).
		Err(err).
		Msg("agent finished")

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timeout after %s: %w", cfg.timeout, err)
		}

		if !cfg.useTTY && len(errBytes) == 0 && len(outBytes) > 0 {
			errBytes = outBytes
		}

		return exitWithError(exitCode, errBytes, fmt.Errorf("run agent: %w", err))
	}

	resp, _, err := areply.DecodeResponse(outBytes)
	if err != nil {
		return exitWithError(1, nil, fmt.Errorf("decode response: %w", err))
	}

	if err := areply.WriteResponse(os.Stdout, resp.Canonical()); err != nil {
		return exitWithError(1, nil, fmt.Errorf("write stdout: %w", err))
	}

	return nil
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func exitWithError(code int, errBytes []byte, err error) error {
	if len(errBytes) > 0 {
		_, _ = os.Stderr.Write(errBytes)
	}

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
	}

	if code != 0 {
		exitFn(code)

		return nil
	}

	exitFn(1)

	return nil
}
