package cmd

import (
	"bytes"
	"testing"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetsCmd(t *testing.T) {
	fakeHost(t, "", &helpers.MockCommandRunner{})
	captureUI(t)

	cmd := NewTargetsCmd(testConfig(), testLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	for _, dist := range core.Distributions {
		assert.Contains(t, output, string(dist))
	}
	assert.Contains(t, output, "wazuh-agent-4.7.3-1.el5.x86_64.rpm")
	assert.Contains(t, output, "wazuh-agent-4.7.3-r1.apk")
}

func TestTargetsCmd_Filter(t *testing.T) {
	fakeHost(t, "", &helpers.MockCommandRunner{})
	captureUI(t)

	cmd := NewTargetsCmd(testConfig(), testLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"alpine"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "wazuh-agent-4.7.3-r1.apk")
	assert.NotContains(t, out.String(), ".deb")
}

func TestTargetsCmd_UnknownDistribution(t *testing.T) {
	fakeHost(t, "", &helpers.MockCommandRunner{})
	_, stderr := captureUI(t)

	cmd := NewTargetsCmd(testConfig(), testLogger())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"gentoo"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, core.ExitDistribution, ExitCode(err))
	assert.Contains(t, stderr.String(), "Unsupported distribution")
}

func TestTargetsCmd_CustomTable(t *testing.T) {
	fs := fakeHost(t, "", &helpers.MockCommandRunner{})
	captureUI(t)

	custom := `agent_version = "4.8.0"

[extensions]
default = "rpm"

[filenames]
debian = "wazuh-agent_4.8.0-1_amd64.deb"
`
	require.NoError(t, afero.WriteFile(fs, "/etc/wazuh-bootstrap/release.toml", []byte(custom), 0644))

	cfg := testConfig()
	cfg.Release.TableFile = "/etc/wazuh-bootstrap/release.toml"

	cmd := NewTargetsCmd(cfg, testLogger())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "wazuh-agent_4.8.0-1_amd64.deb")
	assert.NotContains(t, out.String(), "4.7.3")
}
