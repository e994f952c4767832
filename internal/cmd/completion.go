package cmd

import (
	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewCompletionCmd creates the completion command
func NewCompletionCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wazuh-bootstrap.

To load completions:

Bash:
  $ source <(wazuh-bootstrap completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ wazuh-bootstrap completion bash > /etc/bash_completion.d/wazuh-bootstrap
  # macOS:
  $ wazuh-bootstrap completion bash > $(brew --prefix)/etc/bash_completion.d/wazuh-bootstrap

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ wazuh-bootstrap completion zsh > "${fpath[1]}/_wazuh-bootstrap"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ wazuh-bootstrap completion fish | source

  # To load completions for each session, execute once:
  $ wazuh-bootstrap completion fish > ~/.config/fish/completions/wazuh-bootstrap.fish

PowerShell:
  PS> wazuh-bootstrap completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> wazuh-bootstrap completion powershell > wazuh-bootstrap.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			out := cmd.OutOrStdout()

			var err error
			switch shell {
			case "bash":
				err = cmd.Root().GenBashCompletion(out)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				ui.PrintError("Failed to generate %s completion: %v", shell, err)
				return reported(err)
			}

			log.Debug().Str("shell", shell).Msg("generated shell completion")
			return nil
		},
	}

	return cmd
}
