package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Output destinations; tests swap these for buffers
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Color scheme
var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow)
	Info    = color.New(color.FgCyan)

	Highlight = color.New(color.FgHiCyan, color.Bold)
	Muted     = color.New(color.Faint)
	Bold      = color.New(color.Bold)
)

// InitColors applies the configured color mode ("auto", "always", "never")
func InitColors(mode string) {
	switch mode {
	case "never":
		DisableColors()
		return
	case "always":
		color.NoColor = false
		return
	}

	// Respect NO_COLOR and dumb terminals
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		color.NoColor = true
	}
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	Success.Fprintf(Stdout, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	Error.Fprintf(Stderr, "%s %s\n", color.RedString("✗"), fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	Warning.Fprintf(Stderr, "Warning: %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	Info.Fprintf(Stdout, "%s %s\n", color.CyanString("→"), fmt.Sprintf(format, args...))
}

// PrintStep prints a step indicator
func PrintStep(step, total int, format string, args ...interface{}) {
	Highlight.Fprintf(Stdout, "[%d/%d] ", step, total)
	fmt.Fprintf(Stdout, format+"\n", args...)
}

// PrintKeyValue prints a key-value pair
func PrintKeyValue(key, value string) {
	Bold.Fprintf(Stdout, "%s: ", key)
	fmt.Fprintln(Stdout, value)
}

// PrintHeader prints a section header
func PrintHeader(text string) {
	fmt.Fprintln(Stdout)
	Bold.Fprintln(Stdout, text)
	Muted.Fprintln(Stdout, "────────────────────────────────────────")
}

// PrintList prints a bulleted list
func PrintList(items []string) {
	for _, item := range items {
		fmt.Fprintf(Stdout, "  • %s\n", item)
	}
}

// DisableColors disables all color output
func DisableColors() {
	color.NoColor = true
}

// AreColorsEnabled returns whether colors are currently enabled
func AreColorsEnabled() bool {
	return !color.NoColor
}
