package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDetectCmd creates the detect command
func NewDetectCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Show the host profile and the package that would be installed",
		Long:  `Detects distribution, version and architecture and resolves the package URL. Nothing is downloaded or installed.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := wire(cfg, log, newEnvironment(), wireOptions{})
			if err != nil {
				ui.PrintError("%v", err)
				return reported(err)
			}

			installed := w.presence.IsInstalled(cmd.Context())

			plan, err := w.provisioner(log).Plan(cmd.Context())
			if err != nil {
				ui.PrintError("%v", err)
				return reported(err)
			}

			agent := "not installed"
			if installed {
				agent = "installed"
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Field", "Value"}),
				tablewriter.WithAlignment(tw.MakeAlign(2, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
			)
			table.Append("Agent", agent)
			table.Append("Distribution", string(plan.Profile.Distribution))
			table.Append("Version", plan.Profile.Version)
			table.Append("Architecture", string(plan.Profile.Architecture))
			table.Append("Filename", plan.Descriptor.Filename)
			table.Append("Extension", string(plan.Descriptor.Extension))
			table.Append("URL", plan.Descriptor.URL)
			table.Append("Download path", plan.Path)
			table.Render()

			log.Debug().
				Str("distribution", string(plan.Profile.Distribution)).
				Str("url", plan.Descriptor.URL).
				Msg("detection complete")

			return nil
		},
	}

	return cmd
}
