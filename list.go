package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"
)

// filterNotes keeps notes with the given tag (if any) and, when pattern is
// set, orders the rest by fuzzy match score on their title
func filterNotes(notes []*ParsedNote, tag, pattern string) []*ParsedNote {
	if tag != "" {
		var tagged []*ParsedNote
		for _, n := range notes {
			if n.hasTag(tag) {
				tagged = append(tagged, n)
			}
		}
		notes = tagged
	}

	if pattern == "" {
		return notes
	}

	titles := make([]string, len(notes))
	for i, n := range notes {
		titles[i] = n.Meta.Title
	}

	matches := fuzzy.Find(pattern, titles)
	filtered := make([]*ParsedNote, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, notes[m.Index])
	}
	return filtered
}

// printNotes writes one line per note: title, tags, filename
func printNotes(w io.Writer, notes []*ParsedNote) {
	for _, n := range notes {
		fmt.Fprintf(w, "%s  %s  %s\n",
			titleStyle.Render(n.Meta.Title),
			tagStyle.Render("["+strings.Join(n.Meta.Tags, ", ")+"]"),
			mutedStyle.Render(n.Filename))
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d notes", len(notes))))
}
