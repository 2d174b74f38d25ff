// Package output provides formatted terminal output for the taskapp CLI.
// Status messages go to Stderr; command results go to Stdout so they can be piped.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects how command results are rendered.
type Format string

const (
	// FormatTable renders results as aligned tables and key/value lists.
	FormatTable Format = "table"
	// FormatYAML renders results as YAML documents.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --output flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use %s or %s)", s, FormatTable, FormatYAML)
	}
}

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	gray   = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)

	// Stdout is the output writer for command results (can be overridden for testing).
	Stdout io.Writer = os.Stdout
	// Stderr is the output writer for status messages (can be overridden for testing).
	Stderr io.Writer = os.Stderr
	// Stdin is read by the prompt helpers (can be overridden for testing).
	Stdin io.Reader = os.Stdin

	_ = func() bool {
		disable := os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stdout)
		if disable {
			color.NoColor = true
		}
		return disable
	}()

	ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// visibleWidth returns the number of visible characters, ignoring ANSI escape codes
func visibleWidth(s string) int {
	return utf8.RuneCountInString(ansiRegexp.ReplaceAllString(s, ""))
}

// Successf prints a success message with a checkmark
func Successf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, green.Sprint("✓")+" "+format+"\n", a...)
}

// Infof prints an informational message with an arrow
func Infof(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, cyan.Sprint("→")+" "+format+"\n", a...)
}

// Warningf prints a warning message with a warning symbol
func Warningf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, yellow.Sprint("⚠")+" "+format+"\n", a...)
}

// Errorf prints an error message with an X symbol
func Errorf(format string, a ...any) {
	_, _ = fmt.Fprintf(Stderr, red.Sprint("✗")+" "+format+"\n", a...)
}

// Fatalf prints an error message and exits with code 1
func Fatalf(format string, a ...any) {
	Errorf(format, a...)
	os.Exit(1)
}

// Header prints a section header with a separator line
func Header(text string) {
	_, _ = fmt.Fprintln(Stderr)
	_, _ = fmt.Fprintln(Stderr, bold.Sprint(text))
	_, _ = fmt.Fprintln(Stderr, gray.Sprint(strings.Repeat("━", 50)))
}

// Subheader prints a smaller section header
func Subheader(text string) {
	_, _ = fmt.Fprintln(Stdout)
	_, _ = fmt.Fprintln(Stdout, cyan.Sprint(text))
	_, _ = fmt.Fprintln(Stdout, gray.Sprint(strings.Repeat("─", visibleWidth(text))))
}

// KeyValue prints a key-value pair with indentation
func KeyValue(key, value string) {
	_, _ = fmt.Fprintf(Stdout, "  %s: %s\n", gray.Sprint(key), value)
}

// Blank prints a blank line
func Blank() {
	_, _ = fmt.Fprintln(Stdout)
}

// Bold returns text in bold
func Bold(text string) string {
	return bold.Sprint(text)
}

// Cyan returns text in cyan
func Cyan(text string) string {
	return cyan.Sprint(text)
}

// Gray returns text in gray
func Gray(text string) string {
	return gray.Sprint(text)
}

// Table prints a simple table with headers.
// Column widths ignore color escape sequences.
func Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && visibleWidth(cell) > widths[i] {
				widths[i] = visibleWidth(cell)
			}
		}
	}

	printRow := func(cells []string, style func(string) string) {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			padding := strings.Repeat(" ", widths[i]-visibleWidth(cell))
			_, _ = fmt.Fprintf(Stdout, "%s%s  ", style(cell), padding)
		}
		_, _ = fmt.Fprintln(Stdout)
	}

	printRow(headers, Bold)
	separators := make([]string, len(headers))
	for i := range headers {
		separators[i] = strings.Repeat("─", widths[i])
	}
	printRow(separators, Gray)
	for _, row := range rows {
		printRow(row, func(s string) string { return s })
	}
}

// YAML writes v as a YAML document
func YAML(v any) error {
	enc := yaml.NewEncoder(Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// StatusBadge returns a colored badge for a task state
func StatusBadge(completed bool) string {
	if completed {
		return green.Sprint("● done")
	}
	return yellow.Sprint("● open")
}

// Prompt prompts the user for a single line of input
func Prompt(prompt string) string {
	_, _ = fmt.Fprintf(Stderr, "%s: ", cyan.Sprint("?")+" "+prompt)

	line, _ := bufio.NewReader(Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

// PromptRequired prompts until a non-empty response is given
func PromptRequired(prompt string) string {
	for {
		response := Prompt(prompt)
		if response != "" {
			return response
		}
		Warningf("This field is required")
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		fileInfo, err := f.Stat()
		if err != nil {
			return false
		}
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
