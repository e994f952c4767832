package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/host"
	"github.com/quantmind-br/wazuh-bootstrap/internal/pkgtable"
	"github.com/quantmind-br/wazuh-bootstrap/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewTargetsCmd creates the targets command
func NewTargetsCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets [distribution]",
		Short: "List the packages in the release table",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := pkgtable.Load(newEnvironment().fs, cfg.Release.TableFile)
			if err != nil {
				ui.PrintError("%v", err)
				return reported(err)
			}

			var only core.Distribution
			if len(args) == 1 {
				only, _, err = host.ResolveDistribution(args[0], "")
				if err != nil {
					ui.PrintError("%v", err)
					return reported(err)
				}
			}

			out := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Distribution", "Version", "Filename", "Extension"}),
				tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleLight)),
			)

			rows := 0
			for _, target := range table.Targets() {
				if only != "" && target.Distribution != only {
					continue
				}
				out.Append(string(target.Distribution), target.Version, target.Filename, string(target.Extension))
				rows++
			}
			out.Render()

			log.Debug().
				Str("agent_version", table.AgentVersion).
				Int("rows", rows).
				Msg("listed release table")

			return nil
		},
	}

	return cmd
}
