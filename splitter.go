package main

import "strings"

const headerDelimiter = "\n# "

// SplitDocument cuts the text at every top-level header and returns the
// non-empty segments in document order
func SplitDocument(text string) []Segment {
	chunks := strings.Split(text, headerDelimiter)
	if len(chunks) > 0 {
		chunks[0] = strings.TrimPrefix(chunks[0], "# ")
	}

	segments := make([]Segment, 0, len(chunks))
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		lines := strings.Split(chunk, "\n")
		segments = append(segments, Segment{
			Title: strings.TrimSpace(lines[0]),
			Body:  strings.Join(lines[1:], "\n"),
		})
	}

	return segments
}
