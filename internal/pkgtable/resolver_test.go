package pkgtable

import (
	"errors"
	"fmt"
	"testing"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver(nil, "", "")
	require.NoError(t, err)
	return r
}

func TestResolver_GoldenTable(t *testing.T) {
	const (
		x86RPM = "wazuh-agent-4.7.3-1.x86_64.rpm"
		el5RPM = "wazuh-agent-4.7.3-1.el5.x86_64.rpm"
		amdDeb = "wazuh-agent_4.7.3-1_amd64.deb"
	)

	tests := []struct {
		dist     core.Distribution
		version  string
		filename string
		ext      core.Extension
	}{
		{core.DistAlpine, "3.19", "wazuh-agent-4.7.3-r1.apk", core.ExtAPK},
		{core.DistAmazon, "latest", "wazuh-agent-4.7.3-1.ppc64le.rpm", core.ExtRPM},
		{core.DistCentOS, "5", el5RPM, core.ExtRPM},
		{core.DistCentOS, "7", x86RPM, core.ExtRPM},
		{core.DistDebian, "12", amdDeb, core.ExtRPM},
		{core.DistFedora, "39", x86RPM, core.ExtRPM},
		{core.DistOpenSUSE, "15.5", x86RPM, core.ExtRPM},
		{core.DistOracle, "5", el5RPM, core.ExtRPM},
		{core.DistOracle, "8", x86RPM, core.ExtRPM},
		{core.DistRedHat, "5", el5RPM, core.ExtRPM},
		{core.DistRedHat, "9", x86RPM, core.ExtRPM},
		{core.DistSUSE, "11", el5RPM, core.ExtRPM},
		{core.DistSUSE, "15", x86RPM, core.ExtRPM},
		{core.DistUbuntu, "22.04", amdDeb, core.ExtRPM},
		{core.DistRaspbian, "11", "wazuh-agent_4.7.3-1_armhf.deb", core.ExtRPM},
	}

	r := newDefaultResolver(t)

	for _, tt := range tests {
		for _, arch := range core.Architectures {
			name := fmt.Sprintf("%s_%s_%s", tt.dist, tt.version, arch)
			t.Run(name, func(t *testing.T) {
				profile := core.HostProfile{Distribution: tt.dist, Version: tt.version, Architecture: arch}

				desc, err := r.Resolve(profile)
				require.NoError(t, err)

				want := core.PackageDescriptor{
					Filename:  tt.filename,
					Extension: tt.ext,
					URL: fmt.Sprintf("https://packages.wazuh.com/4.x/%s/%s/%s/%s",
						tt.dist, tt.version, arch, tt.filename),
				}
				assert.Equal(t, want, desc)

				// deterministic
				again, err := r.Resolve(profile)
				require.NoError(t, err)
				assert.Equal(t, desc, again)
			})
		}
	}
}

func TestResolver_UbuntuScenario(t *testing.T) {
	desc, err := newDefaultResolver(t).Resolve(core.HostProfile{
		Distribution: core.DistUbuntu,
		Version:      "22.04",
		Architecture: core.ArchX8664,
	})
	require.NoError(t, err)

	assert.Equal(t, "wazuh-agent_4.7.3-1_amd64.deb", desc.Filename)
	assert.Equal(t, core.ExtRPM, desc.Extension)
	assert.True(t, desc.IsDeb())
	assert.Equal(t, "https://packages.wazuh.com/4.x/ubuntu/22.04/x86_64/wazuh-agent_4.7.3-1_amd64.deb", desc.URL)
}

func TestResolver_CustomHostAndSeries(t *testing.T) {
	r, err := NewResolver(Default(), "mirror.internal:8443", "5.x")
	require.NoError(t, err)

	desc, err := r.Resolve(core.HostProfile{Distribution: core.DistDebian, Version: "12", Architecture: core.ArchAarch64})
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.internal:8443/5.x/debian/12/aarch64/wazuh-agent_4.7.3-1_amd64.deb", desc.URL)
}

func TestNewResolver_Invalid(t *testing.T) {
	_, err := NewResolver(nil, "evil.com/path", "")
	assert.Error(t, err)

	_, err = NewResolver(nil, "", "../4.x")
	assert.Error(t, err)
}

func TestResolver_UnknownDistribution(t *testing.T) {
	table, err := Parse([]byte(`
[extensions]
default = "rpm"

[filenames]
centos = "agent.rpm"
`))
	require.NoError(t, err)

	r, err := NewResolver(table, "", "")
	require.NoError(t, err)

	_, err = r.Resolve(core.HostProfile{Distribution: core.DistUbuntu, Version: "22.04", Architecture: core.ArchX8664})
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrDistribution))
}
