package fsops

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/os-release", []byte("ID=ubuntu\n"), 0644))

	data, err := ReadFile(fs, "/etc/os-release")
	require.NoError(t, err)
	assert.Equal(t, "ID=ubuntu\n", string(data))

	_, err = ReadFile(fs, "/etc/missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "/etc/missing")
}

func TestExistsAndIsDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0755))
	require.NoError(t, afero.WriteFile(fs, "/tmp/wazuh-agent.rpm", []byte("x"), 0644))

	assert.True(t, Exists(fs, "/tmp/wazuh-agent.rpm"))
	assert.False(t, Exists(fs, "/tmp/other"))
	assert.True(t, IsDir(fs, "/tmp"))
	assert.False(t, IsDir(fs, "/tmp/wazuh-agent.rpm"))
	assert.False(t, IsDir(fs, "/missing"))
}

func TestCheckWritable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp", 0755))
	assert.NoError(t, CheckWritable(fs, "/tmp"))

	ro := afero.NewReadOnlyFs(fs)
	assert.Error(t, CheckWritable(ro, "/tmp"))
}

func TestRemoveQuietly(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/wazuh-agent.rpm", []byte("x"), 0644))

	assert.True(t, RemoveQuietly(fs, "/tmp/wazuh-agent.rpm"))
	assert.False(t, Exists(fs, "/tmp/wazuh-agent.rpm"))

	// already gone
	assert.True(t, RemoveQuietly(fs, "/tmp/wazuh-agent.rpm"))

	require.NoError(t, afero.WriteFile(fs, "/tmp/locked.rpm", []byte("x"), 0644))
	ro := afero.NewReadOnlyFs(fs)
	assert.False(t, RemoveQuietly(ro, "/tmp/locked.rpm"))
}
