package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/fetch"
	"github.com/quantmind-br/wazuh-bootstrap/internal/provision"
	"github.com/quantmind-br/wazuh-bootstrap/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Replaced in tests
var (
	confirmPrompt = ui.ConfirmPrompt
	isInteractive = ui.IsInteractive
)

type installOptions struct {
	yes     bool
	timeout time.Duration
}

// NewInstallCmd creates the install command
func NewInstallCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var opts installOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the Wazuh agent if it is missing",
		Long: `Checks for an existing Wazuh agent and, when none is found, downloads and
installs the package for this host. Requires sudo.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, cfg, log, opts)
		},
	}

	addInstallFlags(cmd, &opts)

	return cmd
}

func addInstallFlags(cmd *cobra.Command, opts *installOptions) {
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "deadline for the whole run (0 disables)")
}

func runInstall(cmd *cobra.Command, cfg *config.Config, log *zerolog.Logger, opts installOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	log.Info().
		Bool("yes", opts.yes).
		Dur("timeout", opts.timeout).
		Msg("starting provisioning")

	wopts := wireOptions{stdout: ui.Stdout, stderr: ui.Stderr}
	if isInteractive() {
		wopts.progress = func(description string) fetch.Progress {
			return ui.NewSpinner(ui.Stderr, description)
		}
	}

	w, err := wire(cfg, log, newEnvironment(), wopts)
	if err != nil {
		ui.PrintError("Failed to install Wazuh agent: %v", err)
		return reported(err)
	}

	prov := w.provisioner(log).OnStage(printStage)
	if cfg.Install.Confirm && !opts.yes {
		prov.Confirm(confirmPlan)
	}

	outcome, err := prov.Run(ctx)
	if err != nil {
		if errors.Is(err, provision.ErrCancelled) {
			ui.PrintWarning("Installation cancelled")
			return reported(err)
		}
		ui.PrintError("Failed to install Wazuh agent: %v", err)
		log.Debug().Err(err).Msg("provisioning failed")
		return reported(err)
	}

	switch outcome {
	case core.OutcomeAlreadyInstalled:
		ui.PrintSuccess("Wazuh agent is already installed.")
	case core.OutcomeInstalled:
		ui.PrintSuccess("Wazuh agent installed successfully.")
	}

	return nil
}

func printStage(stage core.Stage) {
	switch stage {
	case core.StageDetecting:
		ui.PrintInfo("Wazuh agent is not installed. Installing...")
	case core.StageDownloading:
		ui.PrintStep(1, 3, "Downloading package...")
	case core.StageEscalating:
		ui.PrintStep(2, 3, "Requesting sudo privileges...")
	case core.StageInstalling:
		ui.PrintStep(3, 3, "Installing package...")
	}
}

func confirmPlan(plan provision.Plan) (bool, error) {
	if !isInteractive() {
		return false, fmt.Errorf("confirmation required but no terminal is attached; pass --yes")
	}

	ui.PrintKeyValue("Host", fmt.Sprintf("%s %s (%s)",
		plan.Profile.Distribution, plan.Profile.Version, plan.Profile.Architecture))
	ui.PrintKeyValue("Package", plan.Descriptor.Filename)
	ui.PrintKeyValue("URL", plan.Descriptor.URL)

	return confirmPrompt("Install the Wazuh agent")
}
