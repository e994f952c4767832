// Package pkgtable resolves a host profile to the vendor package to install.
//
// The lookup data is a pinned vendor release kept in release.toml and
// embedded at build time; an alternative table can be loaded from disk.
package pkgtable

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/fsops"
	"github.com/quantmind-br/wazuh-bootstrap/internal/security"
	"github.com/spf13/afero"
)

//go:embed release.toml
var embeddedRelease []byte

const defaultKey = "default"

// Override pins a filename for a distribution release
type Override struct {
	Distribution string `toml:"distribution"`
	Version      string `toml:"version"`
	Filename     string `toml:"filename"`
}

// Table is a decoded release table
type Table struct {
	AgentVersion string            `toml:"agent_version"`
	Extensions   map[string]string `toml:"extensions"`
	Filenames    map[string]string `toml:"filenames"`
	Overrides    []Override        `toml:"overrides"`
}

// Target is one row of the table, for display
type Target struct {
	Distribution core.Distribution
	Version      string // "*" when the row applies to every version
	Filename     string
	Extension    core.Extension
}

// Default returns the embedded release table
func Default() *Table {
	t, err := Parse(embeddedRelease)
	if err != nil {
		panic(fmt.Sprintf("embedded release table: %v", err))
	}
	return t
}

// Load reads a release table from path, or the embedded one when path is empty
func Load(fs afero.Fs, path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := fsops.ReadFile(fs, path)
	if err != nil {
		return nil, core.NewIOError(err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("release table %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a TOML release table
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode release table: %w", err)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Table) validate() error {
	if len(t.Filenames) == 0 {
		return fmt.Errorf("release table has no filenames")
	}
	if t.Extensions[defaultKey] == "" {
		return fmt.Errorf("release table has no default extension")
	}

	for dist, name := range t.Filenames {
		if err := security.ValidateFilename(name); err != nil {
			return fmt.Errorf("filename for %s: %w", dist, err)
		}
	}

	for i, o := range t.Overrides {
		if o.Distribution == "" || o.Version == "" {
			return fmt.Errorf("override %d: distribution and version are required", i)
		}
		if err := security.ValidateFilename(o.Filename); err != nil {
			return fmt.Errorf("override %d: %w", i, err)
		}
	}

	return nil
}

// Filename returns the package filename for a distribution release.
// Overrides match on the exact version string; architecture never
// participates in the lookup.
func (t *Table) Filename(dist core.Distribution, version string) (string, bool) {
	for _, o := range t.Overrides {
		if o.Distribution == string(dist) && o.Version == version {
			return o.Filename, true
		}
	}

	name, ok := t.Filenames[string(dist)]
	return name, ok
}

// Extension returns the extension the table assigns to a distribution.
// It can disagree with the filename suffix (debian, ubuntu and raspbian
// report "rpm" for .deb files); use PackageDescriptor.IsDeb to choose an
// install command.
func (t *Table) Extension(dist core.Distribution) core.Extension {
	if ext, ok := t.Extensions[string(dist)]; ok {
		return core.Extension(ext)
	}
	return core.Extension(t.Extensions[defaultKey])
}

// Targets lists every table row, sorted by distribution then version
func (t *Table) Targets() []Target {
	targets := make([]Target, 0, len(t.Filenames)+len(t.Overrides))

	for dist, name := range t.Filenames {
		d := core.Distribution(dist)
		targets = append(targets, Target{Distribution: d, Version: "*", Filename: name, Extension: t.Extension(d)})
	}
	for _, o := range t.Overrides {
		d := core.Distribution(o.Distribution)
		targets = append(targets, Target{Distribution: d, Version: o.Version, Filename: o.Filename, Extension: t.Extension(d)})
	}

	sort.Slice(targets, func(i, j int) bool {
		if targets[i].Distribution != targets[j].Distribution {
			return targets[i].Distribution < targets[j].Distribution
		}
		// "*" sorts before digits
		return targets[i].Version < targets[j].Version
	})

	return targets
}
