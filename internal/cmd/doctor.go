package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/fsops"
	"github.com/quantmind-br/wazuh-bootstrap/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the tools and paths provisioning depends on",
		Long:  `Check that the external tools, the OS metadata file and the download directory are usable.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := newEnvironment()

			ui.PrintHeader("System Diagnostics")

			var issues []string
			var warnings []string

			// 1. Required tools
			ui.PrintHeader("Required Tools")
			required := []struct {
				name    string
				purpose string
			}{
				{cfg.Tools.Download, "download the agent package"},
				{cfg.Tools.Elevate, "run the package tool as root"},
			}
			for _, tool := range required {
				if env.runner.CommandExists(tool.name) {
					ui.PrintSuccess("%s: found", tool.name)
				} else {
					ui.PrintError("%s: NOT FOUND", tool.name)
					issues = append(issues, fmt.Sprintf("Missing required tool: %s (%s)", tool.name, tool.purpose))
				}
			}

			// 2. Package tools; one of them is enough
			ui.PrintHeader("Package Tools")
			var found int
			for _, tool := range []string{cfg.Tools.Dpkg, cfg.Tools.Rpm} {
				if env.runner.CommandExists(tool) {
					ui.PrintSuccess("%s: found", tool)
					found++
				} else {
					ui.PrintWarning("%s: not found", tool)
				}
			}
			if found == 0 {
				issues = append(issues, fmt.Sprintf("Neither %s nor %s is available", cfg.Tools.Dpkg, cfg.Tools.Rpm))
			}

			// 3. Presence lookup
			ui.PrintHeader("Agent Lookup")
			if env.runner.CommandExists(cfg.Agent.LookupTool) {
				ui.PrintSuccess("%s: found", cfg.Agent.LookupTool)
			} else {
				ui.PrintWarning("%s: not found (the agent will always be treated as missing)", cfg.Agent.LookupTool)
				warnings = append(warnings, fmt.Sprintf("Lookup tool missing: %s", cfg.Agent.LookupTool))
			}

			// 4. Paths
			ui.PrintHeader("Paths")
			if fsops.Exists(env.fs, cfg.Paths.OSRelease) {
				ui.PrintSuccess("OS metadata: %s", cfg.Paths.OSRelease)
			} else {
				ui.PrintError("OS metadata: NOT READABLE (%s)", cfg.Paths.OSRelease)
				issues = append(issues, fmt.Sprintf("Cannot read %s", cfg.Paths.OSRelease))
			}

			if err := fsops.CheckWritable(env.fs, cfg.Paths.TempDir); err != nil {
				ui.PrintError("Download directory: NOT WRITABLE (%s)", cfg.Paths.TempDir)
				issues = append(issues, fmt.Sprintf("Download directory not writable: %v", err))
			} else {
				ui.PrintSuccess("Download directory: %s", cfg.Paths.TempDir)
			}

			if cfg.Paths.LogFile != "" {
				logDir := filepath.Dir(cfg.Paths.LogFile)
				if fsops.IsDir(env.fs, logDir) {
					ui.PrintSuccess("Log directory: %s", logDir)
				} else {
					ui.PrintWarning("Log directory: missing (%s)", logDir)
					warnings = append(warnings, fmt.Sprintf("Log directory missing: %s", logDir))
				}
			}

			// Summary
			ui.PrintHeader("Summary")

			if len(issues) == 0 {
				ui.PrintSuccess("All critical checks passed!")
			} else {
				ui.PrintError("Found %d issue(s):", len(issues))
				ui.PrintList(issues)
			}

			if len(warnings) > 0 {
				ui.PrintWarning("Found %d warning(s):", len(warnings))
				ui.PrintList(warnings)
			}

			log.Debug().
				Int("issues", len(issues)).
				Int("warnings", len(warnings)).
				Msg("doctor finished")

			if len(issues) > 0 {
				return reported(fmt.Errorf("system check failed with %d issue(s)", len(issues)))
			}

			return nil
		},
	}

	return cmd
}
