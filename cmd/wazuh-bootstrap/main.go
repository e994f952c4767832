package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/wazuh-bootstrap/internal/cmd"
	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/logging"
	"github.com/quantmind-br/wazuh-bootstrap/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return core.ExitGeneral
	}

	ui.InitColors(cfg.Logging.Color)

	// Initialize logger
	log := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
	})

	// Execute root command
	rootCmd := cmd.NewRootCmd(cfg, log, version)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !cmd.IsReported(err) {
			ui.PrintError("%v", err)
		}
		code := cmd.ExitCode(err)
		log.Debug().Err(err).Int("exit_code", code).Msg("command failed")
		return code
	}

	return core.ExitSuccess
}
