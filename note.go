package main

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	blockquotePrefix     = regexp.MustCompile(`(?m)^> `)
)

// noteTemplateData is what the note template sees
type noteTemplateData struct {
	Title         string
	FormattedDate string
	Tag           Tag
	Body          string
}

// NoteBuilder turns segments into notes using a frontmatter template
type NoteBuilder struct {
	tmpl *template.Template
}

// NewNoteBuilder parses the note template. A single trailing newline is
// dropped so the body is the last thing in the file.
func NewNoteBuilder(templateText string) (*NoteBuilder, error) {
	tmpl, err := template.New("note").Parse(strings.TrimSuffix(templateText, "\n"))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return &NoteBuilder{tmpl: tmpl}, nil
}

// Build derives filename, tag and display title for a segment and renders
// the final file content
func (b *NoteBuilder) Build(seg Segment) (*Note, error) {
	formatted, tag, parsed := classifyTitle(seg.Title)
	body := stripBlockquotes(seg.Body)

	var buf bytes.Buffer
	err := b.tmpl.Execute(&buf, noteTemplateData{
		Title:         seg.Title,
		FormattedDate: formatted,
		Tag:           tag,
		Body:          body,
	})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &Note{
		Filename:      sanitizeFilename(seg.Title + ".md"),
		Title:         seg.Title,
		FormattedDate: formatted,
		Tag:           tag,
		DateParsed:    parsed,
		Body:          body,
		Content:       buf.String(),
	}, nil
}

// sanitizeFilename removes characters most filesystems reject
func sanitizeFilename(name string) string {
	return invalidFilenameChars.ReplaceAllString(name, "")
}

// stripBlockquotes undoes the "> " prefix the export puts on body lines
func stripBlockquotes(body string) string {
	return strings.TrimSpace(blockquotePrefix.ReplaceAllString(body, ""))
}
