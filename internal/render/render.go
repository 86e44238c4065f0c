// Package render turns annotated diff text into the final HTML report.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/diff.html
var defaultTemplate string

// builtinEntities maps Unicode characters that render poorly in older
// HTML viewers to their entity equivalents.
var builtinEntities = map[string]string{
	"…": "&hellip;",
	"ě": "&#283;",
	"à": "&agrave;",
	"ó": "&oacute;",
	"‒": "&#8210;",
	"–": "&ndash;",
	"‘": "'",
}

// Options configures a Renderer.
type Options struct {
	// TemplatePath overrides the embedded HTML template.
	TemplatePath string
	// Entities are extra Unicode-to-entity replacements merged over the
	// built-in table.
	Entities map[string]string
}

// Renderer converts annotated diff lines to HTML. It is an explicitly
// constructed value; there is no package-level template state.
type Renderer struct {
	tmpl     *template.Template
	md       goldmark.Markdown
	entities *strings.Replacer
}

// New builds a renderer from opts.
func New(opts Options) (*Renderer, error) {
	text := defaultTemplate
	if opts.TemplatePath != "" {
		data, err := os.ReadFile(opts.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
		text = string(data)
	}

	tmpl, err := template.New("diff").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	merged := make(map[string]string, len(builtinEntities)+len(opts.Entities))
	for k, v := range builtinEntities {
		merged[k] = v
	}
	for k, v := range opts.Entities {
		merged[k] = v
	}
	pairs := make([]string, 0, len(merged)*2)
	for k, v := range merged {
		pairs = append(pairs, k, v)
	}

	return &Renderer{
		tmpl: tmpl,
		// The annotated lines carry our own spans and divs, so raw HTML
		// must survive the markdown pass.
		md:       goldmark.New(goldmark.WithRendererOptions(goldmarkhtml.WithUnsafe())),
		entities: strings.NewReplacer(pairs...),
	}, nil
}

// Render runs the markdown pass over the annotated lines, executes the
// template with the result under the Markdown key, and applies the
// entity substitutions.
func (r *Renderer) Render(lines []string) (string, error) {
	var mdBuf bytes.Buffer
	if err := r.md.Convert([]byte(strings.Join(lines, "\n")), &mdBuf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	data := struct {
		Markdown template.HTML
	}{Markdown: template.HTML(mdBuf.String())}

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return r.entities.Replace(htmlBuf.String()), nil
}

// WriteFile renders the annotated lines and writes the HTML to path.
func (r *Renderer) WriteFile(path string, lines []string) error {
	html, err := r.Render(lines)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
