package presence

import (
	"context"
	"strings"
	"time"

	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

const (
	DefaultControlBinary = "wazuhctl"
	DefaultLookupTool    = "which"
)

// Checker detects an existing agent by looking up its control binary on PATH
type Checker struct {
	runner        helpers.CommandRunner
	lookupTool    string
	controlBinary string
	timeout       time.Duration
	logger        *zerolog.Logger
	access        func(path string) error
}

// NewChecker creates a Checker; timeout bounds the lookup (zero disables it)
func NewChecker(runner helpers.CommandRunner, lookupTool, controlBinary string, timeout time.Duration, log *zerolog.Logger) *Checker {
	if lookupTool == "" {
		lookupTool = DefaultLookupTool
	}
	if controlBinary == "" {
		controlBinary = DefaultControlBinary
	}
	return &Checker{
		runner:        runner,
		lookupTool:    lookupTool,
		controlBinary: controlBinary,
		timeout:       timeout,
		logger:        log,
		access:        isExecutable,
	}
}

// IsInstalled never fails: a missing lookup tool counts as "not installed"
func (c *Checker) IsInstalled(ctx context.Context) bool {
	ctx, cancel := helpers.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.runner.RunCommand(ctx, c.lookupTool, c.controlBinary)
	if err != nil {
		if helpers.IsSpawnError(err) {
			c.logger.Debug().Err(err).Str("tool", c.lookupTool).Msg("lookup tool unavailable")
		}
		return false
	}

	path := firstLine(out)
	if path == "" {
		return false
	}

	if err := c.access(path); err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("control binary not executable")
		return false
	}

	c.logger.Debug().Str("path", path).Msg("control binary found")
	return true
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}

func isExecutable(path string) error {
	return unix.Access(path, unix.X_OK)
}
