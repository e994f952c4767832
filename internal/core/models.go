package core

import "strings"

// Distribution is a recognized Linux distribution tag
type Distribution string

const (
	DistAlpine   Distribution = "alpine"
	DistAmazon   Distribution = "amazon"
	DistCentOS   Distribution = "centos"
	DistDebian   Distribution = "debian"
	DistFedora   Distribution = "fedora"
	DistOpenSUSE Distribution = "opensuse"
	DistOracle   Distribution = "oracle"
	DistRedHat   Distribution = "redhat"
	DistSUSE     Distribution = "suse"
	DistUbuntu   Distribution = "ubuntu"
	DistRaspbian Distribution = "raspbian"
)

// Distributions lists every supported distribution in table order
var Distributions = []Distribution{
	DistAlpine,
	DistAmazon,
	DistCentOS,
	DistDebian,
	DistFedora,
	DistOpenSUSE,
	DistOracle,
	DistRedHat,
	DistSUSE,
	DistUbuntu,
	DistRaspbian,
}

// Architecture is a recognized CPU architecture tag
type Architecture string

const (
	ArchI386    Architecture = "i386"
	ArchX8664   Architecture = "x86_64"
	ArchAarch64 Architecture = "aarch64"
	ArchArmhf   Architecture = "armhf"
	ArchPowerPC Architecture = "powerpc"
)

// Architectures lists every supported architecture tag
var Architectures = []Architecture{ArchI386, ArchX8664, ArchAarch64, ArchArmhf, ArchPowerPC}

// Extension is the package extension reported by the release table
type Extension string

const (
	ExtAPK Extension = "apk"
	ExtRPM Extension = "rpm"
)

// DebSuffix is the filename suffix that selects the Debian install command
const DebSuffix = ".deb"

// HostProfile describes the host the agent is provisioned on
type HostProfile struct {
	Distribution Distribution `json:"distribution"`
	Version      string       `json:"version"`
	Architecture Architecture `json:"architecture"`
}

// PackageDescriptor is the resolved artifact for a HostProfile
type PackageDescriptor struct {
	Filename  string    `json:"filename"`
	Extension Extension `json:"extension"`
	URL       string    `json:"url"`
}

// IsDeb reports whether the filename itself is a Debian package.
// Extension may say "rpm" for a .deb filename; installers must use this.
func (d PackageDescriptor) IsDeb() bool {
	return strings.HasSuffix(d.Filename, DebSuffix)
}

// Outcome is the terminal result of a successful provisioning run
type Outcome string

const (
	OutcomeAlreadyInstalled Outcome = "already_installed"
	OutcomeInstalled        Outcome = "installed"
)

// Stage identifies a step of the provisioning sequence
type Stage string

const (
	StageCheckingPresence Stage = "checking_presence"
	StageDetecting        Stage = "detecting"
	StageResolving        Stage = "resolving"
	StageDownloading      Stage = "downloading"
	StageEscalating       Stage = "escalating"
	StageInstalling       Stage = "installing"
	StageCleanup          Stage = "cleanup"
	StageDone             Stage = "done"
	StageFailed           Stage = "failed"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitGeneral      = 1
	ExitInvalidArgs  = 2
	ExitDistribution = 3
	ExitArchitecture = 4
	ExitInstall      = 5
	ExitPermission   = 6
	ExitNetwork      = 7
	ExitIO           = 8
)
