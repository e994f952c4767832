package cmd

import (
	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Without a subcommand it installs
// the agent.
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var opts installOptions

	cmd := &cobra.Command{
		Use:   "wazuh-bootstrap",
		Short: "Install the Wazuh agent on this host",
		Long: `Detects whether the Wazuh agent is present and, if not, downloads the
package matching this host's distribution, version and architecture and
installs it with dpkg or rpm under sudo.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd, cfg, log, opts)
		},
	}

	addInstallFlags(cmd, &opts)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.AddCommand(NewInstallCmd(cfg, log))
	cmd.AddCommand(NewDetectCmd(cfg, log))
	cmd.AddCommand(NewTargetsCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
