package installer

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/fsops"
	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	DefaultDpkg = "dpkg"
	DefaultRpm  = "rpm"
)

// Elevator wraps a command so it runs with elevated privileges
type Elevator interface {
	Wrap(name string, args ...string) (string, []string)
}

// Installer runs the native package tool against a downloaded package
type Installer struct {
	runner   helpers.CommandRunner
	elevator Elevator
	fs       afero.Fs
	dpkg     string
	rpm      string
	timeout  time.Duration
	stdout   io.Writer
	stderr   io.Writer
	logger   *zerolog.Logger
}

// Options configures an Installer
type Options struct {
	Dpkg    string
	Rpm     string
	Timeout time.Duration
	// Stdout and Stderr receive the package tool's output; nil discards it
	Stdout io.Writer
	Stderr io.Writer
}

// New creates an Installer
func New(runner helpers.CommandRunner, elevator Elevator, fs afero.Fs, opts Options, log *zerolog.Logger) *Installer {
	if opts.Dpkg == "" {
		opts.Dpkg = DefaultDpkg
	}
	if opts.Rpm == "" {
		opts.Rpm = DefaultRpm
	}
	return &Installer{
		runner:   runner,
		elevator: elevator,
		fs:       fs,
		dpkg:     opts.Dpkg,
		rpm:      opts.Rpm,
		timeout:  opts.Timeout,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		logger:   log,
	}
}

// CommandFor returns the unelevated install command for a package. The
// filename suffix decides, never the table's extension.
func (i *Installer) CommandFor(desc core.PackageDescriptor, path string) (string, []string) {
	if desc.IsDeb() {
		return i.dpkg, []string{"-i", path}
	}
	return i.rpm, []string{"-Uvh", path}
}

// Install installs the package at path with elevated privileges and then
// removes path, whatever the outcome. Removal failures are ignored.
func (i *Installer) Install(ctx context.Context, desc core.PackageDescriptor, path string) error {
	defer i.cleanup(path)

	ctx, cancel := helpers.WithTimeout(ctx, i.timeout)
	defer cancel()

	tool, toolArgs := i.CommandFor(desc, path)
	name, args := i.elevator.Wrap(tool, toolArgs...)

	i.logger.Info().
		Str("filename", desc.Filename).
		Str("path", path).
		Str("command", name).
		Strs("args", args).
		Msg("installing package")

	var captured bytes.Buffer
	stderr := io.Writer(&captured)
	if i.stderr != nil {
		stderr = io.MultiWriter(&captured, i.stderr)
	}

	if err := i.runner.RunCommandStreaming(ctx, i.stdout, stderr, name, args...); err != nil {
		i.logger.Debug().
			Err(err).
			Int("exit_code", i.runner.GetExitCode(err)).
			Str("stderr", captured.String()).
			Msg("package tool failed")
		return core.NewInstallationError("Failed to install Wazuh agent package.", err)
	}

	return nil
}

func (i *Installer) cleanup(path string) {
	if fsops.RemoveQuietly(i.fs, path) {
		i.logger.Debug().Str("path", path).Msg("removed downloaded package")
		return
	}
	i.logger.Debug().Str("path", path).Msg("could not remove downloaded package")
}
