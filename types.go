package main

import "fmt"

// Tag classifies a note in its frontmatter
type Tag string

const (
	TagDailyJots Tag = "daily-jots"
	TagImported  Tag = "imported"
)

// Document is the raw export text, read once
type Document struct {
	Source string
	Text   string
}

// Segment is one top-level header block of a Document
type Segment struct {
	Title string
	Body  string
}

// Note is a single output file with rendered frontmatter
type Note struct {
	Filename      string
	Title         string
	FormattedDate string
	Tag           Tag
	DateParsed    bool
	Body          string
	Content       string
}

// NoteResult tracks the outcome of writing one note
type NoteResult struct {
	Path       string
	Tag        Tag
	DateParsed bool
	Overwrote  bool
}

// RunSummary reports what a split run produced
type RunSummary struct {
	Notes         []NoteResult
	Collisions    []string
	DateFallbacks []string
	ArchivePath   string
	ArchiveCount  int
}

// MissingInputError is returned when the source document does not exist
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("the file %s does not exist", e.Path)
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}
