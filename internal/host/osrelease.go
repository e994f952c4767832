package host

import (
	"bufio"
	"io"
	"strings"
)

// ParseOSRelease parses os-release style KEY=value lines. Blank lines and
// comments are skipped and surrounding quotes are stripped from values.
func ParseOSRelease(r io.Reader) map[string]string {
	fields := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		fields[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"'`)
	}

	return fields
}
