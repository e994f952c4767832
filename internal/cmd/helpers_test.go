package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/quantmind-br/wazuh-bootstrap/internal/config"
	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/quantmind-br/wazuh-bootstrap/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const ubuntuRelease = "NAME=\"Ubuntu\"\nID=ubuntu\nVERSION_ID=\"22.04\"\n"

func testConfig() *config.Config {
	return &config.Config{
		Agent:   config.AgentConfig{ControlBinary: "wazuhctl", LookupTool: "which"},
		Release: config.ReleaseConfig{VendorHost: "packages.wazuh.com", Series: "4.x"},
		Paths: config.PathsConfig{
			OSRelease: "/etc/os-release",
			TempDir:   "/tmp",
			LogFile:   "/var/log/wazuh-bootstrap/wazuh-bootstrap.log",
		},
		Tools: config.ToolsConfig{Download: "curl", Elevate: "sudo", Dpkg: "dpkg", Rpm: "rpm"},
		Timeouts: config.TimeoutsConfig{
			Probe:    time.Second,
			Download: time.Minute,
			Elevate:  time.Minute,
			Install:  time.Minute,
		},
		Logging: config.LoggingConfig{Level: "info", Color: "never"},
	}
}

func testLogger() *zerolog.Logger {
	log := zerolog.New(io.Discard)
	return &log
}

// fakeHost swaps the process environment for an in-memory one
func fakeHost(t *testing.T, osRelease string, runner *helpers.MockCommandRunner) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0755))
	if osRelease != "" {
		require.NoError(t, afero.WriteFile(fs, "/etc/os-release", []byte(osRelease), 0644))
	}

	if runner.RunCommandStreamingFunc == nil {
		runner.RunCommandStreamingFunc = func(_ context.Context, _, _ io.Writer, name string, args ...string) error {
			if name == "curl" {
				return afero.WriteFile(fs, args[len(args)-1], []byte("package"), 0644)
			}
			return nil
		}
	}

	orig := newEnvironment
	newEnvironment = func() environment {
		return environment{runner: runner, fs: fs, goarch: "amd64"}
	}
	t.Cleanup(func() { newEnvironment = orig })

	return fs
}

// captureUI redirects ui output to buffers
func captureUI(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	origOut, origErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = &stdout, &stderr
	ui.DisableColors()
	t.Cleanup(func() { ui.Stdout, ui.Stderr = origOut, origErr })

	return &stdout, &stderr
}
