package main

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

func newMarkdownRenderer() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

// renderPreview writes each note as an <article> with its display title and
// the body rendered to HTML
func renderPreview(w io.Writer, notes []*Note) error {
	engine := newMarkdownRenderer()

	for _, note := range notes {
		var buf bytes.Buffer
		if err := engine.Convert([]byte(note.Body), &buf); err != nil {
			return fmt.Errorf("rendering %s: %w", note.Filename, err)
		}

		_, err := fmt.Fprintf(w, "<article data-file=\"%s\" data-tag=\"%s\">\n<h1>%s</h1>\n%s</article>\n",
			html.EscapeString(note.Filename),
			note.Tag,
			html.EscapeString(note.FormattedDate),
			buf.String())
		if err != nil {
			return err
		}
	}
	return nil
}
