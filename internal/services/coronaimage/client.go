package coronaimage

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"

	"cxrextract/internal/logging"
	"cxrextract/internal/services"
)

// WildcardElement asks CoronaImageCmd to extract every element in one pass.
const WildcardElement = "*"

// Pair is one input CXR file and the output image it should produce.
type Pair struct {
	Input  string
	Output string
}

// Client defines the conversion behaviour the extractor needs.
type Client interface {
	Extract(ctx context.Context, element string, pairs []Pair) error
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (stderr string, err error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *CLI) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// CLI wraps CoronaImageCmd invocations. One call converts any number of
// frames for a single element (or the wildcard).
type CLI struct {
	binary string
	exec   Executor
	logger *slog.Logger
}

// New constructs a CoronaImageCmd client.
func New(binary string, logger *slog.Logger, opts ...Option) (*CLI, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("CoronaImageCmd binary required")
	}
	client := &CLI{
		binary: binary,
		exec:   commandExecutor{},
		logger: logging.NewComponentLogger(logger, "coronaimage"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Extract runs one batch conversion: `<binary> --batch -e <element> in out ...`.
// The process is waited on to completion; its error stream is logged, never
// parsed. A missing binary is classified separately from a failing one.
func (c *CLI) Extract(ctx context.Context, element string, pairs []Pair) error {
	if strings.TrimSpace(element) == "" {
		return services.Wrap(services.ErrValidation, "coronaimage", "extract", "element name required", nil)
	}
	if len(pairs) == 0 {
		return services.Wrap(services.ErrValidation, "coronaimage", "extract", "no input/output pairs", nil)
	}

	args := make([]string, 0, 3+2*len(pairs))
	args = append(args, "--batch", "-e", element)
	for _, pair := range pairs {
		args = append(args, pair.Input, pair.Output)
	}

	stderr, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		if isNotFound(err) {
			c.logger.Error("CoronaImageCmd not found",
				logging.String("binary", c.binary))
			return services.Wrap(services.ErrToolNotFound, "coronaimage", "extract",
				"binary "+c.binary+" not found", err)
		}
		c.logger.Error("conversion failed",
			logging.String(logging.FieldLayer, element),
			logging.Int("frames", len(pairs)),
			logging.String("stderr", strings.TrimSpace(stderr)))
		return services.Wrap(services.ErrExternalTool, "coronaimage", "extract",
			"element "+element, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

var _ Client = (*CLI)(nil)
