package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestPackageDescriptor_IsDeb(t *testing.T) {
	tests := []struct {
		name     string
		desc     PackageDescriptor
		expected bool
	}{
		{"deb filename with rpm extension", PackageDescriptor{Filename: "wazuh-agent_4.7.3-1_amd64.deb", Extension: ExtRPM}, true},
		{"rpm filename", PackageDescriptor{Filename: "wazuh-agent-4.7.3-1.x86_64.rpm", Extension: ExtRPM}, false},
		{"apk filename", PackageDescriptor{Filename: "wazuh-agent-4.7.3-r1.apk", Extension: ExtAPK}, false},
		{"deb in the middle", PackageDescriptor{Filename: "wazuh.deb.rpm", Extension: ExtRPM}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.IsDeb(); got != tt.expected {
				t.Errorf("IsDeb() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestProvisionError_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewDistributionError("Unsupported distribution", nil), "Distribution detection error: Unsupported distribution"},
		{NewArchitectureError("Unsupported architecture"), "Architecture detection error: Unsupported architecture"},
		{NewDownloadError("Curl is not installed.", nil), "Download error: Curl is not installed."},
		{NewSudoError("Sudo privileges are required for installation.", nil), "Sudo error: Sudo privileges are required for installation."},
		{NewInstallationError("Failed to install Wazuh agent package.", nil), "Installation error: Failed to install Wazuh agent package."},
		{NewIOError(errors.New("disk full")), "IO error: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProvisionError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("exit status 6")
	err := fmt.Errorf("fetch: %w", NewDownloadError("Failed to download the Wazuh agent package.", cause))

	if !errors.Is(err, ErrDownload) {
		t.Error("expected errors.Is(err, ErrDownload)")
	}
	if errors.Is(err, ErrSudo) {
		t.Error("download error must not match ErrSudo")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}

	kind, ok := KindOf(err)
	if !ok || kind != KindDownload {
		t.Errorf("KindOf() = %q, %v; want %q, true", kind, ok, KindDownload)
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneral},
		{"distribution", NewDistributionError("x", nil), ExitDistribution},
		{"architecture", NewArchitectureError("x"), ExitArchitecture},
		{"installation", NewInstallationError("x", nil), ExitInstall},
		{"sudo", NewSudoError("x", nil), ExitPermission},
		{"download", NewDownloadError("x", nil), ExitNetwork},
		{"io", NewIOError(errors.New("x")), ExitIO},
		{"wrapped", fmt.Errorf("install: %w", NewSudoError("x", nil)), ExitPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}
