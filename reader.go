package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// NoteMeta holds the frontmatter fields written by the splitter
type NoteMeta struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// ParsedNote is a note read back from disk or an archive
type ParsedNote struct {
	Filename string
	Meta     NoteMeta
	Body     string
}

// ParseNote splits a note into frontmatter and body
func ParseNote(filename string, content []byte) (*ParsedNote, error) {
	var meta NoteMeta
	body, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter in %s: %w", filename, err)
	}
	return &ParsedNote{
		Filename: filename,
		Meta:     meta,
		Body:     strings.TrimSpace(string(body)),
	}, nil
}

// readNotes loads every note in a directory or a .zip archive, sorted by filename
func readNotes(source string) ([]*ParsedNote, error) {
	files := make(map[string][]byte)

	if strings.EqualFold(filepath.Ext(source), ".zip") {
		entries, err := readArchive(source)
		if err != nil {
			return nil, err
		}
		files = entries
	} else {
		paths, err := filepath.Glob(filepath.Join(source, "*.md"))
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", path, err)
			}
			files[filepath.Base(path)] = data
		}
	}

	notes := make([]*ParsedNote, 0, len(files))
	for name, data := range files {
		if !strings.HasSuffix(name, ".md") {
			continue
		}
		note, err := ParseNote(name, data)
		if err != nil {
			// Titles containing ": " are not valid YAML scalars
			log.Printf("Warning: %v", err)
			note = &ParsedNote{
				Filename: name,
				Meta:     NoteMeta{Title: strings.TrimSuffix(name, ".md")},
				Body:     string(data),
			}
		}
		notes = append(notes, note)
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].Filename < notes[j].Filename })
	return notes, nil
}

// hasTag reports whether the note carries tag
func (n *ParsedNote) hasTag(tag string) bool {
	for _, t := range n.Meta.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
