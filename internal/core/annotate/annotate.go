// Package annotate transforms unified git diffs into markdown-ready text.
//
// Git metadata blocks (the "diff --git" header plus everything before the
// first hunk) are replaced by file markers, and added/removed content is
// wrapped in highlight markup. The output lines feed a markdown pass.
package annotate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidDiff means the input contains no "diff --git" line at all.
	ErrInvalidDiff = errors.New("invalid diff: no diff --git line found")
	// ErrNoHunkEnd means a "diff --git" header has no following "@@ " hunk
	// header before the input ends.
	ErrNoHunkEnd = errors.New("no end for last diff file")
)

var fileHeaderRe = regexp.MustCompile(`^diff --git a/(\S+)`)

// Markup is the highlight vocabulary emitted around diff content.
type Markup struct {
	AddStart    string
	RemoveStart string
	End         string
	LineBreak   string
	// FileMarker renders the marker that replaces one file's metadata
	// block. The marker text must contain "File: <path>".
	FileMarker func(path string) string
}

// HTMLMarkup returns the markup used for HTML reports: inline-styled
// spans for highlights and a div per file boundary.
func HTMLMarkup(addColor, removeColor string) Markup {
	return Markup{
		AddStart:    fmt.Sprintf("<span style='background-color: %s'>", addColor),
		RemoveStart: fmt.Sprintf("<span style='background-color: %s'>", removeColor),
		End:         "</span>",
		LineBreak:   "<br>",
		FileMarker: func(path string) string {
			return fmt.Sprintf("<div class=\"file\">File: %s</div>", path)
		},
	}
}

// Annotator rewrites unified diff lines using a fixed Markup.
type Annotator struct {
	markup Markup
	repl   *strings.Replacer
}

// New creates an annotator emitting the given markup.
func New(m Markup) *Annotator {
	return &Annotator{
		markup: m,
		// Word-diff tokens are disjoint pairs, so a single replacer pass
		// is order-independent.
		repl: strings.NewReplacer(
			"[-", m.RemoveStart,
			"-]", m.End,
			"{+", m.AddStart,
			"+}", m.End,
		),
	}
}

// Annotate converts a unified diff into annotated lines: leading noise
// discarded, file metadata blocks replaced by markers, added/removed
// content wrapped in highlight markup.
func (a *Annotator) Annotate(lines []string) ([]string, error) {
	start, err := locateStart(lines)
	if err != nil {
		return nil, err
	}

	stripped, err := a.stripFileHeaders(lines[start:])
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(stripped))
	for _, line := range stripped {
		out = append(out, a.highlightLine(line))
	}
	return out, nil
}

// locateStart returns the index of the first "diff --git" line. Anything
// before it (commit message, diff stat) is discarded by the caller.
func locateStart(lines []string) (int, error) {
	for i, line := range lines {
		if strings.HasPrefix(line, "diff --git") {
			return i, nil
		}
	}
	return 0, ErrInvalidDiff
}

// stripFileHeaders replaces each file's metadata block (the "diff --git"
// header through its first "@@ " hunk header, inclusive) with a single
// file marker. One forward pass; marker order matches block order.
func (a *Annotator) stripFileHeaders(lines []string) ([]string, error) {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		m := fileHeaderRe.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			continue
		}

		end := i
		for !strings.HasPrefix(lines[end], "@@ ") {
			end++
			if end >= len(lines) {
				return nil, ErrNoHunkEnd
			}
		}

		log.Debug().Str("file", m[1]).Int("from", i).Int("to", end).Msg("found file block")

		out = append(out, a.markup.FileMarker(m[1]))
		i = end
	}
	return out, nil
}

// highlightLine substitutes word-diff tokens, then wraps whole-line
// additions/removals. A line whose substituted form starts with '+' or
// '-' is classified by that first character alone; content that
// legitimately begins with those characters is wrapped too, matching
// git's own line-diff convention.
func (a *Annotator) highlightLine(line string) string {
	line = a.repl.Replace(line)

	if line != "" {
		switch line[0] {
		case '-':
			line = a.markup.RemoveStart + line[1:] + a.markup.End + a.markup.LineBreak
		case '+':
			line = a.markup.AddStart + line[1:] + a.markup.End + a.markup.LineBreak
		}
	}

	return strings.TrimRight(line, " \t\r")
}
