// Package export renders a service plan as Markdown or a printable HTML page.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"doxa/internal/domain"
)

// Format selects the export document type
type Format string

const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ErrUnknownFormat is returned for formats other than md and html
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts "md", "markdown" and "html"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Row is one song line of the exported order of service
type Row struct {
	Title  string
	Number string
	Theme  string
}

// Rows returns the selected songs in service order
func Rows(plan domain.Plan) []Row {
	rows := make([]Row, 0, len(plan.Songs))
	for _, s := range plan.Songs {
		rows = append(rows, Row{Title: s.Title, Number: s.Number, Theme: s.Theme})
	}
	return rows
}

// Heading returns the document heading, filling in placeholders for a
// missing name or date
func Heading(service domain.ServiceInfo) string {
	name := service.Name
	if name == "" {
		name = "Church Service"
	}
	return name + " - " + dateOrUndated(service.Date)
}

// Title returns the printable page title
func Title(service domain.ServiceInfo) string {
	return "Church Service Plan - " + dateOrUndated(service.Date)
}

func dateOrUndated(date string) string {
	if date == "" {
		return "Undated"
	}
	return date
}

// Markdown renders the plan as a Markdown document
func Markdown(plan domain.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escape(Heading(plan.Service)))

	b.WriteString("## Songs\n\n")
	if len(plan.Songs) == 0 {
		b.WriteString("No songs selected\n")
	}
	for i, r := range Rows(plan) {
		fmt.Fprintf(&b, "%d. %s\n", i+1, escape(songLine(r)))
	}

	b.WriteString("\n## Spiritual Gifts\n\n")
	if len(plan.Gifts) == 0 {
		b.WriteString("No spiritual gifts recorded\n")
	}
	for _, g := range plan.Gifts {
		fmt.Fprintf(&b, "- **%s**: %s\n", g.Type, listItemBody(g.Content))
	}

	b.WriteString("\n## Announcements\n\n")
	if len(plan.Announcements) == 0 {
		b.WriteString("No announcements recorded\n")
	}
	for _, a := range plan.Announcements {
		fmt.Fprintf(&b, "- %s\n", listItemBody(a.Content))
	}

	return b.String()
}

func songLine(r Row) string {
	line := r.Title
	if r.Number != "" {
		line += " (#" + r.Number + ")"
	}
	return line + " - " + r.Theme
}

// listItemBody escapes free text and indents continuation lines so they stay
// inside the list item
func listItemBody(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, l := range lines {
		lines[i] = escape(strings.TrimRight(l, "\r"))
	}
	return strings.Join(lines, "\n  ")
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`&`, `\&`,
)

// escape keeps user text literal when rendered as Markdown. Block markers
// only matter at the start of a line.
func escape(s string) string {
	s = inlineEscaper.Replace(s)
	rest := strings.TrimLeft(s, " ")
	if rest == "" {
		return s
	}
	indent := s[:len(s)-len(rest)]
	switch rest[0] {
	case '#', '>', '-', '+', '=':
		return indent + `\` + rest
	}
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i > 0 && i < len(rest) && (rest[i] == '.' || rest[i] == ')') {
		return indent + rest[:i] + `\` + rest[i:]
	}
	return s
}

var markdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; padding: 20px; }
h1 { font-size: 24px; margin-bottom: 20px; }
h2 { font-size: 20px; margin-top: 20px; margin-bottom: 10px; }
ol, ul { padding-left: 20px; }
li { margin-bottom: 8px; }
p { white-space: pre-line; }
strong { font-weight: bold; text-transform: capitalize; }
</style>
</head>
<body>
{{.Body}}</body>
</html>
`))

// HTML renders the plan as a standalone printable page
func HTML(plan domain.Plan) (string, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(Markdown(plan)), &body); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	var out bytes.Buffer
	err := page.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{Title(plan.Service), template.HTML(body.String())})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return out.String(), nil
}

// Render produces the document for format
func Render(plan domain.Plan, format Format) (string, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(plan), nil
	case FormatHTML:
		return HTML(plan)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FileName returns the export file name, <date-or-undated>-<name-slug>.<ext>
func FileName(service domain.ServiceInfo, format Format) string {
	date := slug.Make(service.Date)
	if date == "" {
		date = "undated"
	}
	name := slug.Make(service.Name)
	if name == "" {
		name = "church-service"
	}
	return date + "-" + name + "." + string(format)
}

// WriteFile renders plan and writes it into dir, returning the file path
func WriteFile(ctx context.Context, plan domain.Plan, dir string, format Format) (string, error) {
	doc, err := Render(plan, format)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(plan.Service, format))
	if err := writeAtomic(path, []byte(doc)); err != nil {
		return "", err
	}
	return path, nil
}

// writeAtomic writes data to a uniquely named temp file next to path and
// renames it into place, so concurrent writers never share a temp file
func writeAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write export file: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write export file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace export file: %w", err)
	}
	return nil
}
