package privilege

import (
	"context"
	"time"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/rs/zerolog"
)

// DefaultTool is the elevation program
const DefaultTool = "sudo"

// Escalator validates and applies elevated privileges
type Escalator struct {
	runner  helpers.CommandRunner
	tool    string
	timeout time.Duration
	logger  *zerolog.Logger
}

// New creates an Escalator
func New(runner helpers.CommandRunner, tool string, timeout time.Duration, log *zerolog.Logger) *Escalator {
	if tool == "" {
		tool = DefaultTool
	}
	return &Escalator{
		runner:  runner,
		tool:    tool,
		timeout: timeout,
		logger:  log,
	}
}

// Elevate validates (and refreshes) cached credentials without running
// a command. It must succeed before anything is installed.
func (e *Escalator) Elevate(ctx context.Context) error {
	ctx, cancel := helpers.WithTimeout(ctx, e.timeout)
	defer cancel()

	if _, err := e.runner.RunCommand(ctx, e.tool, "-v"); err != nil {
		e.logger.Debug().
			Err(err).
			Int("exit_code", e.runner.GetExitCode(err)).
			Msg("credential validation failed")
		return core.NewSudoError("Sudo privileges are required for installation.", err)
	}

	e.logger.Debug().Str("tool", e.tool).Msg("privileges validated")
	return nil
}

// Wrap returns name and args prefixed by the elevation program
func (e *Escalator) Wrap(name string, args ...string) (string, []string) {
	return e.tool, append([]string{name}, args...)
}
