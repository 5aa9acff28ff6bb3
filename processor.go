// processor.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// NoteProcessor handles the split workflow
type NoteProcessor struct {
	loader   *DocumentLoader
	builder  *NoteBuilder
	settings *Settings
	out      io.Writer
}

// NewNoteProcessor creates a processor from validated settings
func NewNoteProcessor(settings *Settings, overrides *ConfigOverrides, out io.Writer) (*NoteProcessor, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	tmpl, err := LoadTemplate(overrides)
	if err != nil {
		return nil, err
	}

	builder, err := NewNoteBuilder(tmpl)
	if err != nil {
		return nil, fmt.Errorf("creating note builder: %w", err)
	}

	if out == nil {
		out = io.Discard
	}

	return &NoteProcessor{
		loader:   NewDocumentLoader(),
		builder:  builder,
		settings: settings,
		out:      out,
	}, nil
}

// BuildNotes loads the input and builds every note without writing anything
func (p *NoteProcessor) BuildNotes() ([]*Note, error) {
	doc, err := p.loader.Load(p.settings.InputFile)
	if err != nil {
		return nil, err
	}

	segments := SplitDocument(doc.Text)
	notes := make([]*Note, 0, len(segments))
	for _, seg := range segments {
		note, err := p.builder.Build(seg)
		if err != nil {
			return nil, fmt.Errorf("building note %q: %w", seg.Title, err)
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// Run splits the input into notes, writes them one by one and archives the
// output directory. A write failure stops the run and leaves earlier files.
func (p *NoteProcessor) Run() (*RunSummary, error) {
	doc, err := p.loader.Load(p.settings.InputFile)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p.settings.OutputDirectory, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	segments := SplitDocument(doc.Text)
	log.Printf("Processing %d notes from %s...", len(segments), doc.Source)

	summary := &RunSummary{Notes: make([]NoteResult, 0, len(segments))}
	written := make(map[string]bool, len(segments))

	for _, seg := range segments {
		note, err := p.builder.Build(seg)
		if err != nil {
			return summary, fmt.Errorf("building note %q: %w", seg.Title, err)
		}

		path := filepath.Join(p.settings.OutputDirectory, note.Filename)
		result := NoteResult{Path: path, Tag: note.Tag, DateParsed: note.DateParsed}

		if written[note.Filename] {
			log.Printf("Warning: %s written more than once, keeping the last note", note.Filename)
			summary.Collisions = append(summary.Collisions, note.Filename)
			result.Overwrote = true
		}
		if note.Tag == TagDailyJots && !note.DateParsed {
			log.Printf("Warning: could not parse date %q, keeping title as is", note.Title)
			summary.DateFallbacks = append(summary.DateFallbacks, note.Title)
		}

		if err := os.WriteFile(path, []byte(note.Content), 0644); err != nil {
			return summary, fmt.Errorf("writing %s: %w", path, err)
		}
		written[note.Filename] = true
		summary.Notes = append(summary.Notes, result)

		fmt.Fprintln(p.out, successStyle.Render("Created file: "+path))
	}

	if p.settings.SkipArchive {
		return summary, nil
	}

	count, err := createArchive(p.settings.OutputDirectory, p.settings.ArchivePath)
	if err != nil {
		return summary, err
	}
	summary.ArchivePath = p.settings.ArchivePath
	summary.ArchiveCount = count
	fmt.Fprintln(p.out, successStyle.Render("Created zip file: "+p.settings.ArchivePath))

	return summary, nil
}

// printSummary writes a short report of a run
func printSummary(w io.Writer, summary *RunSummary) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d notes written", len(summary.Notes))))
	if n := len(summary.Collisions); n > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d filename collisions (later notes overwrote earlier ones)", n)))
	}
	if n := len(summary.DateFallbacks); n > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d date-like titles kept verbatim", n)))
	}
}
