package pkgtable

import (
	"fmt"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/security"
)

const (
	DefaultVendorHost = "packages.wazuh.com"
	DefaultSeries     = "4.x"
)

// Resolver builds download descriptors from a release table
type Resolver struct {
	table      *Table
	vendorHost string
	series     string
}

// NewResolver creates a Resolver. Empty host or series fall back to the
// vendor defaults.
func NewResolver(table *Table, vendorHost, series string) (*Resolver, error) {
	if table == nil {
		table = Default()
	}
	if vendorHost == "" {
		vendorHost = DefaultVendorHost
	}
	if series == "" {
		series = DefaultSeries
	}

	if err := security.ValidateHost(vendorHost); err != nil {
		return nil, fmt.Errorf("vendor host: %w", err)
	}
	if err := security.ValidateVersion(series); err != nil {
		return nil, fmt.Errorf("release series: %w", err)
	}

	return &Resolver{table: table, vendorHost: vendorHost, series: series}, nil
}

// Resolve maps a host profile to its package descriptor
func (r *Resolver) Resolve(profile core.HostProfile) (core.PackageDescriptor, error) {
	filename, ok := r.table.Filename(profile.Distribution, profile.Version)
	if !ok {
		return core.PackageDescriptor{}, core.NewDistributionError(
			fmt.Sprintf("No package published for distribution %q", profile.Distribution), nil)
	}

	return core.PackageDescriptor{
		Filename:  filename,
		Extension: r.table.Extension(profile.Distribution),
		URL:       r.URL(profile, filename),
	}, nil
}

// URL assembles https://<host>/<series>/<distribution>/<version>/<architecture>/<filename>
func (r *Resolver) URL(profile core.HostProfile, filename string) string {
	return fmt.Sprintf("https://%s/%s/%s/%s/%s/%s",
		r.vendorHost, r.series, profile.Distribution, profile.Version, profile.Architecture, filename)
}
