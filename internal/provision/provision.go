// Package provision sequences the agent provisioning steps:
//
//	CheckingPresence → Detecting → Resolving → Downloading → Escalating → Installing → Cleanup → Done
//
// A found agent ends the run after the presence check. Any step failure
// ends it immediately with Failed; nothing is retried or rolled back.
// Cleanup is reported once the installer has removed the download, so a
// failed install ends with Installing → Cleanup → Failed.
package provision

import (
	"context"
	"errors"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/rs/zerolog"
)

// ErrCancelled is returned when the confirmation hook declines the install
var ErrCancelled = errors.New("installation cancelled")

type PresenceChecker interface {
	IsInstalled(ctx context.Context) bool
}

type HostDetector interface {
	Detect() (core.HostProfile, error)
}

type PackageResolver interface {
	Resolve(profile core.HostProfile) (core.PackageDescriptor, error)
}

type Downloader interface {
	Destination(ext core.Extension) (string, error)
	Fetch(ctx context.Context, url, dest string) error
}

type Elevator interface {
	Elevate(ctx context.Context) error
}

type PackageInstaller interface {
	Install(ctx context.Context, desc core.PackageDescriptor, path string) error
}

// Plan is what a run would download and install
type Plan struct {
	Profile    core.HostProfile
	Descriptor core.PackageDescriptor
	Path       string
}

// Components are the collaborators of a Provisioner
type Components struct {
	Presence  PresenceChecker
	Host      HostDetector
	Resolver  PackageResolver
	Fetcher   Downloader
	Elevator  Elevator
	Installer PackageInstaller
}

// Provisioner runs the provisioning sequence
type Provisioner struct {
	c       Components
	logger  *zerolog.Logger
	observe func(core.Stage)
	confirm func(Plan) (bool, error)
}

// New creates a Provisioner
func New(c Components, log *zerolog.Logger) *Provisioner {
	return &Provisioner{c: c, logger: log}
}

// OnStage registers a callback invoked on every stage transition
func (p *Provisioner) OnStage(fn func(core.Stage)) *Provisioner {
	p.observe = fn
	return p
}

// Confirm registers a hook consulted after resolving and before downloading
func (p *Provisioner) Confirm(fn func(Plan) (bool, error)) *Provisioner {
	p.confirm = fn
	return p
}

// fail reports the Failed stage and passes err through
func (p *Provisioner) fail(err error) error {
	kind, _ := core.KindOf(err)
	p.logger.Debug().Err(err).Str("kind", string(kind)).Msg("provisioning failed")
	p.enter(core.StageFailed)
	return err
}

func (p *Provisioner) enter(stage core.Stage) {
	p.logger.Debug().Str("stage", string(stage)).Msg("stage")
	if p.observe != nil {
		p.observe(stage)
	}
}

// Run executes the whole sequence
func (p *Provisioner) Run(ctx context.Context) (core.Outcome, error) {
	p.enter(core.StageCheckingPresence)
	if p.c.Presence.IsInstalled(ctx) {
		p.logger.Info().Msg("agent already installed")
		p.enter(core.StageDone)
		return core.OutcomeAlreadyInstalled, nil
	}

	plan, err := p.plan()
	if err != nil {
		return "", p.fail(err)
	}

	if p.confirm != nil {
		ok, err := p.confirm(plan)
		if err != nil {
			return "", p.fail(err)
		}
		if !ok {
			return "", p.fail(ErrCancelled)
		}
	}

	p.enter(core.StageDownloading)
	if err := p.c.Fetcher.Fetch(ctx, plan.Descriptor.URL, plan.Path); err != nil {
		return "", p.fail(err)
	}

	p.enter(core.StageEscalating)
	if err := p.c.Elevator.Elevate(ctx); err != nil {
		return "", p.fail(err)
	}

	p.enter(core.StageInstalling)
	installErr := p.c.Installer.Install(ctx, plan.Descriptor, plan.Path)
	p.enter(core.StageCleanup)
	if installErr != nil {
		return "", p.fail(installErr)
	}

	p.logger.Info().
		Str("filename", plan.Descriptor.Filename).
		Str("distribution", string(plan.Profile.Distribution)).
		Msg("agent installed")

	p.enter(core.StageDone)
	return core.OutcomeInstalled, nil
}

// Plan runs detection and resolution only; it has no side effects
func (p *Provisioner) Plan(_ context.Context) (Plan, error) {
	plan, err := p.plan()
	if err != nil {
		return Plan{}, p.fail(err)
	}
	return plan, nil
}

func (p *Provisioner) plan() (Plan, error) {
	p.enter(core.StageDetecting)
	profile, err := p.c.Host.Detect()
	if err != nil {
		return Plan{}, err
	}

	p.enter(core.StageResolving)
	desc, err := p.c.Resolver.Resolve(profile)
	if err != nil {
		return Plan{}, err
	}

	path, err := p.c.Fetcher.Destination(desc.Extension)
	if err != nil {
		return Plan{}, err
	}

	p.logger.Debug().
		Str("url", desc.URL).
		Str("path", path).
		Msg("package resolved")

	return Plan{Profile: profile, Descriptor: desc, Path: path}, nil
}
