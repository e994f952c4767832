package cmd

import (
	"errors"
	"testing"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd(testConfig(), testLogger(), "1.0.0")

	assert.NotNil(t, cmd)
	assert.Equal(t, "wazuh-bootstrap", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"install", "detect", "targets", "doctor", "completion", "version"}, names)
}

func TestRootCmd_DefaultsToInstall(t *testing.T) {
	runner := &helpers.MockCommandRunner{}
	fakeHost(t, ubuntuRelease, runner)
	stdout, _ := captureUI(t)

	cmd := NewRootCmd(testConfig(), testLogger(), "1.0.0")
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Wazuh agent installed successfully.")
}

func TestRootCmd_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"unexpected argument", []string{"extra"}},
		{"bad completion shell", []string{"completion", "tcsh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd(testConfig(), testLogger(), "1.0.0")
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Equal(t, core.ExitInvalidArgs, ExitCode(err))
			assert.False(t, IsReported(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, core.ExitSuccess, ExitCode(nil))
	assert.Equal(t, core.ExitGeneral, ExitCode(errors.New("boom")))
	assert.Equal(t, core.ExitPermission, ExitCode(reported(core.NewSudoError("no", nil))))
	assert.Equal(t, core.ExitInvalidArgs, ExitCode(&usageError{err: errors.New("bad flag")}))
}

func TestReported(t *testing.T) {
	assert.Nil(t, reported(nil))

	base := core.NewDownloadError("Curl is not installed.", nil)
	err := reported(base)
	assert.True(t, IsReported(err))
	assert.True(t, errors.Is(err, core.ErrDownload))
	assert.Equal(t, base.Error(), err.Error())
	assert.False(t, IsReported(base))
}
