package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a provisioning failure
type ErrorKind string

const (
	KindDistribution ErrorKind = "distribution"
	KindArchitecture ErrorKind = "architecture"
	KindDownload     ErrorKind = "download"
	KindSudo         ErrorKind = "sudo"
	KindInstallation ErrorKind = "installation"
	KindIO           ErrorKind = "io"
)

// ProvisionError is a terminal failure of one provisioning stage
type ProvisionError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *ProvisionError) Error() string {
	var prefix string
	switch e.Kind {
	case KindDistribution:
		prefix = "Distribution detection error"
	case KindArchitecture:
		prefix = "Architecture detection error"
	case KindDownload:
		prefix = "Download error"
	case KindSudo:
		prefix = "Sudo error"
	case KindInstallation:
		prefix = "Installation error"
	case KindIO:
		prefix = "IO error"
	default:
		prefix = "Error"
	}

	if e.Err != nil && e.Msg == "" {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// Is matches another *ProvisionError with the same Kind
func (e *ProvisionError) Is(target error) bool {
	t, ok := target.(*ProvisionError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Err == nil
}

// Sentinels for errors.Is checks against a kind
var (
	ErrDistribution = &ProvisionError{Kind: KindDistribution}
	ErrArchitecture = &ProvisionError{Kind: KindArchitecture}
	ErrDownload     = &ProvisionError{Kind: KindDownload}
	ErrSudo         = &ProvisionError{Kind: KindSudo}
	ErrInstallation = &ProvisionError{Kind: KindInstallation}
	ErrIO           = &ProvisionError{Kind: KindIO}
)

func NewDistributionError(msg string, err error) error {
	return &ProvisionError{Kind: KindDistribution, Msg: msg, Err: err}
}

func NewArchitectureError(msg string) error {
	return &ProvisionError{Kind: KindArchitecture, Msg: msg}
}

func NewDownloadError(msg string, err error) error {
	return &ProvisionError{Kind: KindDownload, Msg: msg, Err: err}
}

func NewSudoError(msg string, err error) error {
	return &ProvisionError{Kind: KindSudo, Msg: msg, Err: err}
}

func NewInstallationError(msg string, err error) error {
	return &ProvisionError{Kind: KindInstallation, Msg: msg, Err: err}
}

// NewIOError wraps a filesystem failure outside the other kinds
func NewIOError(err error) error {
	return &ProvisionError{Kind: KindIO, Err: err}
}

// KindOf returns the kind of the first ProvisionError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var pe *ProvisionError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

// ExitCodeFor maps an error to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	kind, ok := KindOf(err)
	if !ok {
		return ExitGeneral
	}

	switch kind {
	case KindDistribution:
		return ExitDistribution
	case KindArchitecture:
		return ExitArchitecture
	case KindInstallation:
		return ExitInstall
	case KindSudo:
		return ExitPermission
	case KindDownload:
		return ExitNetwork
	case KindIO:
		return ExitIO
	default:
		return ExitGeneral
	}
}
