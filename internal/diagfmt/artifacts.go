package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"headspace/internal/backend"
)

// FormatArtifacts prints each artifact under a "==> name <==" header, the
// way `head` does for several files.
func FormatArtifacts(w io.Writer, arts []backend.Artifact, useColor bool) error {
	header := color.New(color.FgCyan, color.Bold)
	if useColor {
		header.EnableColor()
	} else {
		header.DisableColor()
	}
	for i, a := range arts {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, header.Sprintf("==> %s <==", a.Name)); err != nil {
			return err
		}
		content := a.Content
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if _, err := io.WriteString(w, content); err != nil {
			return err
		}
	}
	return nil
}
