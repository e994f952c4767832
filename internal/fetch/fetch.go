package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/quantmind-br/wazuh-bootstrap/internal/core"
	"github.com/quantmind-br/wazuh-bootstrap/internal/helpers"
	"github.com/quantmind-br/wazuh-bootstrap/internal/security"
	"github.com/rs/zerolog"
)

const (
	DefaultTool    = "curl"
	DefaultTempDir = "/tmp"
	// artifactBase is the fixed download name; concurrent runs share it
	artifactBase = "wazuh-agent"
)

// Progress receives the download tool's progress output
type Progress interface {
	io.Writer
	Finish() error
}

// Fetcher downloads packages with an external HTTP tool
type Fetcher struct {
	runner       helpers.CommandRunner
	tool         string
	tempDir      string
	probeTimeout time.Duration
	timeout      time.Duration
	logger       *zerolog.Logger
	newProgress  func(description string) Progress
}

// Options configures a Fetcher
type Options struct {
	Tool         string
	TempDir      string
	ProbeTimeout time.Duration
	Timeout      time.Duration
	// NewProgress, when set, creates a progress sink per download
	NewProgress func(description string) Progress
}

// New creates a Fetcher
func New(runner helpers.CommandRunner, opts Options, log *zerolog.Logger) *Fetcher {
	if opts.Tool == "" {
		opts.Tool = DefaultTool
	}
	if opts.TempDir == "" {
		opts.TempDir = DefaultTempDir
	}
	return &Fetcher{
		runner:       runner,
		tool:         opts.Tool,
		tempDir:      opts.TempDir,
		probeTimeout: opts.ProbeTimeout,
		timeout:      opts.Timeout,
		logger:       log,
		newProgress:  opts.NewProgress,
	}
}

// Destination returns the fixed download path for an extension
func (f *Fetcher) Destination(ext core.Extension) (string, error) {
	dest := filepath.Join(f.tempDir, fmt.Sprintf("%s.%s", artifactBase, ext))
	if err := security.ValidateDownloadPath(f.tempDir, dest); err != nil {
		return "", core.NewIOError(err)
	}
	return dest, nil
}

// Probe checks the download tool can be spawned
func (f *Fetcher) Probe(ctx context.Context) error {
	ctx, cancel := helpers.WithTimeout(ctx, f.probeTimeout)
	defer cancel()

	if !f.runner.CanSpawn(ctx, f.tool) {
		return core.NewDownloadError(fmt.Sprintf("%s is not installed.", capitalize(f.tool)), nil)
	}
	return nil
}

// Fetch downloads url to dest, following redirects. An existing file at
// dest is overwritten.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	if err := f.Probe(ctx); err != nil {
		return err
	}

	ctx, cancel := helpers.WithTimeout(ctx, f.timeout)
	defer cancel()

	f.logger.Info().
		Str("url", url).
		Str("path", dest).
		Msg("downloading package")

	var stderr bytes.Buffer
	var progressOut io.Writer = &stderr
	var progress Progress
	if f.newProgress != nil {
		progress = f.newProgress("Downloading " + filepath.Base(dest))
		progressOut = io.MultiWriter(&stderr, progress)
	}

	err := f.runner.RunCommandStreaming(ctx, nil, progressOut, f.tool, "-L", url, "-o", dest)

	if progress != nil {
		_ = progress.Finish()
	}

	if err != nil {
		f.logger.Debug().
			Err(err).
			Int("exit_code", f.runner.GetExitCode(err)).
			Str("stderr", lastLine(stderr.String())).
			Msg("download failed")
		return core.NewDownloadError("Failed to download the Wazuh agent package.", err)
	}

	f.logger.Debug().Str("path", dest).Msg("download complete")
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	base := filepath.Base(s)
	return strings.ToUpper(base[:1]) + base[1:]
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\r\n")
	if i := strings.LastIndexAny(s, "\r\n"); i >= 0 {
		return s[i+1:]
	}
	return s
}
