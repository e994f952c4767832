package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletionCmd(t *testing.T) {
	cmd := NewCompletionCmd(testConfig(), testLogger())

	assert.NotNil(t, cmd)
	assert.Contains(t, cmd.Use, "completion")
}

func TestCompletionCmd_Shells(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := NewRootCmd(testConfig(), testLogger(), "1.0.0")
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})

			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), "wazuh-bootstrap")
		})
	}
}
