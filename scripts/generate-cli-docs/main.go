// Package main generates a single markdown file documenting every taskapp CLI command.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/taskapp/taskapp/cmd/cli/cmd"
	"github.com/taskapp/taskapp/internal/constants"
)

func main() {
	var outFile string
	flag.StringVar(&outFile, "out", "./docs/CLI.md", "output file for generated markdown")
	flag.Parse()

	if outFile == "" {
		log.Fatal("error: output file is required")
	}

	if err := os.MkdirAll(filepath.Dir(outFile), constants.ConfigDirPermissions); err != nil {
		log.Fatalf("error: creating output directory: %v", err)
	}

	var buf bytes.Buffer
	root := cmd.RootCmd()
	root.DisableAutoGenTag = true

	fmt.Fprintf(&buf, "# %s CLI\n\nAll commands with their flags and examples.\n\n", constants.ProjectName)
	if err := writeCommand(&buf, root, 2); err != nil {
		log.Fatalf("error: %v", err)
	}

	if err := os.WriteFile(filepath.Clean(outFile), buf.Bytes(), 0o600); err != nil {
		log.Fatalf("error: writing %s: %v", outFile, err)
	}
	log.Printf("generated CLI documentation in %s", outFile)
}

func writeCommand(w io.Writer, c *cobra.Command, level int) error {
	if !c.IsAvailableCommand() && c.HasParent() {
		return nil
	}

	fmt.Fprintf(w, "%s %s\n\n", strings.Repeat("#", min(level, 6)), c.CommandPath())
	if c.Short != "" {
		fmt.Fprintf(w, "%s\n\n", c.Short)
	}
	if c.Long != "" && c.Long != c.Short {
		fmt.Fprintf(w, "%s\n\n", c.Long)
	}
	if c.Example != "" {
		fmt.Fprintf(w, "**Examples:**\n\n```bash\n%s\n```\n\n", c.Example)
	}

	var generated bytes.Buffer
	if err := doc.GenMarkdown(c, &generated); err != nil {
		return fmt.Errorf("generating markdown for %s: %w", c.CommandPath(), err)
	}
	if options := optionsSection(generated.String()); options != "" {
		fmt.Fprintf(w, "%s\n\n", options)
	}

	children := c.Commands()
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })
	for _, child := range children {
		if err := writeCommand(w, child, level+1); err != nil {
			return err
		}
	}
	return nil
}

// optionsSection extracts the flag tables cobra renders under "### Options".
func optionsSection(markdown string) string {
	start := strings.Index(markdown, "### Options")
	if start < 0 {
		return ""
	}
	section := markdown[start:]
	if end := strings.Index(section, "\n### SEE ALSO"); end > 0 {
		section = section[:end]
	}
	return strings.TrimSpace(section)
}
