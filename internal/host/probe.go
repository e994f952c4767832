package host

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/fsops"
	"github.com/quantmind-br/wazuh-bootstrap/internal/security"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultOSReleasePath is the standard OS identification file
const DefaultOSReleasePath = "/etc/os-release"

// amazonVersion replaces VERSION_ID on Amazon Linux; the vendor publishes
// those packages under a single "latest" directory.
const amazonVersion = "latest"

// Probe detects the host profile
type Probe struct {
	fs            afero.Fs
	osReleasePath string
	goarch        string
	logger        *zerolog.Logger
}

// NewProbe creates a Probe reading osReleasePath from fs
func NewProbe(fs afero.Fs, osReleasePath string, log *zerolog.Logger) *Probe {
	if osReleasePath == "" {
		osReleasePath = DefaultOSReleasePath
	}
	return &Probe{
		fs:            fs,
		osReleasePath: osReleasePath,
		goarch:        runtime.GOARCH,
		logger:        log,
	}
}

// WithGOARCH overrides the build architecture (useful for tests)
func (p *Probe) WithGOARCH(goarch string) *Probe {
	p.goarch = goarch
	return p
}

// Detect returns the full HostProfile
func (p *Probe) Detect() (core.HostProfile, error) {
	dist, version, err := p.DistributionAndVersion()
	if err != nil {
		return core.HostProfile{}, err
	}

	arch, err := p.Architecture()
	if err != nil {
		return core.HostProfile{}, err
	}

	profile := core.HostProfile{Distribution: dist, Version: version, Architecture: arch}

	p.logger.Debug().
		Str("distribution", string(profile.Distribution)).
		Str("version", profile.Version).
		Str("architecture", string(profile.Architecture)).
		Msg("host detected")

	return profile, nil
}

// DistributionAndVersion reads ID and VERSION_ID from the os-release file
func (p *Probe) DistributionAndVersion() (core.Distribution, string, error) {
	data, err := fsops.ReadFile(p.fs, p.osReleasePath)
	if err != nil {
		return "", "", core.NewDistributionError(fmt.Sprintf("Failed to read %s", p.osReleasePath), err)
	}

	fields := ParseOSRelease(bytes.NewReader(data))
	return ResolveDistribution(fields["ID"], fields["VERSION_ID"])
}

// ResolveDistribution maps a raw ID/VERSION_ID pair to a supported
// distribution by exact match.
func ResolveDistribution(id, version string) (core.Distribution, string, error) {
	var dist core.Distribution
	for _, d := range core.Distributions {
		if string(d) == id {
			dist = d
			break
		}
	}

	if dist == "" {
		msg := "Unsupported distribution"
		if id != "" {
			msg = fmt.Sprintf("Unsupported distribution %q", id)
			if hint := suggestDistribution(id); hint != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}
		}
		return "", "", core.NewDistributionError(msg, nil)
	}

	if dist == core.DistAmazon {
		return dist, amazonVersion, nil
	}

	if err := security.ValidateVersion(version); err != nil {
		return "", "", core.NewDistributionError(fmt.Sprintf("Unusable VERSION_ID %q", version), err)
	}

	return dist, version, nil
}

func suggestDistribution(id string) string {
	names := make([]string, len(core.Distributions))
	for i, d := range core.Distributions {
		names[i] = string(d)
	}

	ranks := fuzzy.RankFindNormalizedFold(id, names)
	if len(ranks) == 0 {
		// fall back to the reverse direction, e.g. "rhel" vs "redhat"
		for _, name := range names {
			if fuzzy.MatchNormalizedFold(name, id) {
				return name
			}
		}
		return ""
	}

	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}

// Architecture maps the build architecture to a supported tag
func (p *Probe) Architecture() (core.Architecture, error) {
	return ArchitectureFor(p.goarch)
}

// ArchitectureFor maps a GOARCH value to a supported tag
func ArchitectureFor(goarch string) (core.Architecture, error) {
	switch goarch {
	case "386":
		return core.ArchI386, nil
	case "amd64":
		return core.ArchX8664, nil
	case "arm64":
		return core.ArchAarch64, nil
	case "arm":
		return core.ArchArmhf, nil
	case "ppc64", "ppc64le":
		return core.ArchPowerPC, nil
	default:
		return "", core.NewArchitectureError(fmt.Sprintf("Unsupported architecture %q", goarch))
	}
}
