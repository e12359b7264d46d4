package alignstack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/piotrcurious/same-picture-finder/internal/logging"
	"github.com/piotrcurious/same-picture-finder/internal/pto"
	"github.com/piotrcurious/same-picture-finder/internal/services"
)

const outputTailLimit = 512

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger sets the logger used for run failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client wraps align_image_stack invocations.
type Client struct {
	binary  string
	timeout time.Duration
	exec    Executor
	logger  *slog.Logger
}

// New constructs an align_image_stack client. A zero timeout lets each run
// take as long as the tool needs.
func New(binary string, timeoutSeconds int, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("align_image_stack binary required")
	}
	client := &Client{
		binary:  binary,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "alignstack")
	return client, nil
}

// Args builds the align_image_stack argument list:
// -o <artifact> <params...> <images...>.
func Args(artifactPath string, params, images []string) []string {
	args := make([]string, 0, 2+len(params)+len(images))
	args = append(args, "-o", artifactPath)
	args = append(args, params...)
	args = append(args, images...)
	return args
}

// Align runs the tool with one parameter set and returns the overlap
// indicators parsed from the artifact. Failures yield an empty result.
func (c *Client) Align(ctx context.Context, images, params []string, artifactPath string) []float64 {
	logger := logging.WithContext(ctx, c.logger)
	if err := c.run(ctx, images, params, artifactPath); err != nil {
		logger.Error("align_image_stack run failed",
			logging.Strings("params", params),
			logging.String("kind", services.FailureKind(err)),
			logging.Error(err),
		)
		return nil
	}
	return pto.Indicators(artifactPath, logger)
}

func (c *Client) run(ctx context.Context, images, params []string, artifactPath string) error {
	runCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	output, err := c.exec.Run(runCtx, c.binary, Args(artifactPath, params, images))
	if err == nil {
		return nil
	}
	detail := describeFailure(err, output)
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, "alignstack", "run", fmt.Sprintf("exceeded %s", c.timeout), err)
	}
	return services.Wrap(services.ErrExternalTool, "alignstack", "run", detail, err)
}

func describeFailure(err error, output []byte) string {
	var exitErr *exec.ExitError
	msg := ""
	if errors.As(err, &exitErr) {
		msg = fmt.Sprintf("exit status %d", exitErr.ExitCode())
	}
	if tail := outputTail(output); tail != "" {
		if msg != "" {
			msg += ": "
		}
		msg += tail
	}
	return msg
}

func outputTail(output []byte) string {
	trimmed := bytes.TrimSpace(output)
	if len(trimmed) > outputTailLimit {
		trimmed = trimmed[len(trimmed)-outputTailLimit:]
	}
	return strings.Join(strings.Fields(string(trimmed)), " ")
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	return cmd.CombinedOutput()
}
