package security

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ValidVersionRegex allows standard version formats
	ValidVersionRegex = regexp.MustCompile(`^[a-zA-Z0-9._+~-]+$`)

	// ValidFilenameRegex allows package file names from the release table
	ValidFilenameRegex = regexp.MustCompile(`^[a-zA-Z0-9._+~-]+$`)

	// ValidHostRegex allows DNS names with an optional port
	ValidHostRegex = regexp.MustCompile(`^[a-zA-Z0-9.-]+(:[0-9]{1,5})?$`)

	// dangerousPatterns must never reach a URL segment or a file path
	dangerousPatterns = []string{"..", "/", "\\", ";", "&", "|", "`", "$", "\n", "\r"}
)

// ValidateVersion validates a VERSION_ID value. Empty is accepted: some
// distributions omit it and the URL segment is then left empty.
func ValidateVersion(version string) error {
	if version == "" {
		return nil
	}

	if len(version) >= 100 {
		return fmt.Errorf("version string too long (max 100 characters)")
	}

	if strings.Contains(version, "\x00") {
		return fmt.Errorf("invalid version: contains null byte")
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(version, pattern) {
			return fmt.Errorf("invalid version: contains dangerous pattern: %q", pattern)
		}
	}

	if !ValidVersionRegex.MatchString(version) {
		return fmt.Errorf("invalid version format: %q", version)
	}

	return nil
}

// ValidateFilename checks that a package filename is a bare file name
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if len(name) > 255 {
		return fmt.Errorf("filename too long (max 255 characters)")
	}

	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid filename: %q", name)
	}

	if !ValidFilenameRegex.MatchString(name) {
		return fmt.Errorf("invalid filename: must contain only alphanumeric, dot, dash, plus, tilde or underscore characters")
	}

	return nil
}

// ValidateHost checks a vendor host name used to build download URLs
func ValidateHost(host string) error {
	if host == "" {
		return fmt.Errorf("host cannot be empty")
	}

	if !ValidHostRegex.MatchString(host) || strings.Contains(host, "..") {
		return fmt.Errorf("invalid host: %q", host)
	}

	return nil
}

// ValidateDownloadPath ensures the download target stays inside dir
func ValidateDownloadPath(dir, path string) error {
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null byte")
	}

	within, err := IsPathWithinDirectory(path, dir)
	if err != nil {
		return err
	}
	if !within {
		return fmt.Errorf("path escapes download directory: %s", path)
	}

	return nil
}

// IsPathWithinDirectory reports whether targetPath is basePath itself or
// below it. Both paths must be absolute.
func IsPathWithinDirectory(targetPath, basePath string) (bool, error) {
	if !filepath.IsAbs(targetPath) || !filepath.IsAbs(basePath) {
		return false, fmt.Errorf("relative paths not supported: %q, %q", targetPath, basePath)
	}

	rel, err := filepath.Rel(filepath.Clean(basePath), filepath.Clean(targetPath))
	if err != nil {
		return false, nil
	}

	if rel == "." {
		return true, nil
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}
