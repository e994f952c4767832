package cmd

import (
	"io"
	"runtime"

	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/fetch"
	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/quantmind-br/wazuh-bootstrap/internal/host"
	"github.com/quantmind-br/wazuh-bootstrap/internal/installer"
	"github.com/quantmind-br/wazuh-bootstrap/internal/pkgtable"
	"github.com/quantmind-br/wazuh-bootstrap/internal/presence"
	"github.com/quantmind-br/wazuh-bootstrap/internal/privilege"
	"github.com/quantmind-br/wazuh-bootstrap/internal/provision"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// environment is everything the commands touch outside the process
type environment struct {
	runner helpers.CommandRunner
	fs     afero.Fs
	goarch string
}

// newEnvironment is replaced in tests
var newEnvironment = func() environment {
	return environment{
		runner: helpers.NewOSCommandRunner(),
		fs:     afero.NewOsFs(),
		goarch: runtime.GOARCH,
	}
}

// wiring holds the assembled components for one command invocation
type wiring struct {
	presence  *presence.Checker
	probe     *host.Probe
	resolver  *pkgtable.Resolver
	fetcher   *fetch.Fetcher
	escalator *privilege.Escalator
	installer *installer.Installer
}

type wireOptions struct {
	progress func(description string) fetch.Progress
	stdout   io.Writer
	stderr   io.Writer
}

func wire(cfg *config.Config, log *zerolog.Logger, env environment, opts wireOptions) (*wiring, error) {
	table, err := pkgtable.Load(env.fs, cfg.Release.TableFile)
	if err != nil {
		return nil, err
	}

	resolver, err := pkgtable.NewResolver(table, cfg.Release.VendorHost, cfg.Release.Series)
	if err != nil {
		return nil, err
	}

	escalator := privilege.New(env.runner, cfg.Tools.Elevate, cfg.Timeouts.Elevate, log)

	return &wiring{
		presence: presence.NewChecker(env.runner, cfg.Agent.LookupTool, cfg.Agent.ControlBinary, cfg.Timeouts.Probe, log),
		probe:    host.NewProbe(env.fs, cfg.Paths.OSRelease, log).WithGOARCH(env.goarch),
		resolver: resolver,
		fetcher: fetch.New(env.runner, fetch.Options{
			Tool:         cfg.Tools.Download,
			TempDir:      cfg.Paths.TempDir,
			ProbeTimeout: cfg.Timeouts.Probe,
			Timeout:      cfg.Timeouts.Download,
			NewProgress:  opts.progress,
		}, log),
		escalator: escalator,
		installer: installer.New(env.runner, escalator, env.fs, installer.Options{
			Dpkg:    cfg.Tools.Dpkg,
			Rpm:     cfg.Tools.Rpm,
			Timeout: cfg.Timeouts.Install,
			Stdout:  opts.stdout,
			Stderr:  opts.stderr,
		}, log),
	}, nil
}

func (w *wiring) provisioner(log *zerolog.Logger) *provision.Provisioner {
	return provision.New(provision.Components{
		Presence:  w.presence,
		Host:      w.probe,
		Resolver:  w.resolver,
		Fetcher:   w.fetcher,
		Elevator:  w.escalator,
		Installer: w.installer,
	}, log)
}
