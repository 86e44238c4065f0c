package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Preview renders the annotated lines as styled markdown to w instead of
// producing an HTML file. Wrap width follows the terminal when stdout is
// one.
func Preview(w io.Writer, lines []string) error {
	width := 100
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if tw, _, err := term.GetSize(fd); err == nil {
			width = tw
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err != nil {
		return fmt.Errorf("create term renderer: %w", err)
	}

	rendered, err := r.Render(strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}

	_, err = fmt.Fprint(w, rendered)
	return err
}
