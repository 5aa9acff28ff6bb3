package main

import "testing"

func TestSplitDocument(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []Segment
	}{
		{
			name: "two notes",
			text: "# Mon, 5 Mar, 2024\n> Did some work today.\n\n# Project Ideas\nBuild a widget.\n",
			expected: []Segment{
				{Title: "Mon, 5 Mar, 2024", Body: "> Did some work today.\n"},
				{Title: "Project Ideas", Body: "Build a widget.\n"},
			},
		},
		{
			name: "preamble before first header",
			text: "Exported notes\nintro\n# First\nbody",
			expected: []Segment{
				{Title: "Exported notes", Body: "intro"},
				{Title: "First", Body: "body"},
			},
		},
		{
			name: "subheaders stay in body",
			text: "# Top\n## Sub\ntext\n### Deeper",
			expected: []Segment{
				{Title: "Top", Body: "## Sub\ntext\n### Deeper"},
			},
		},
		{
			name: "whitespace-only segments dropped",
			text: "\n# A\nx\n#  \n\n# B\ny",
			expected: []Segment{
				{Title: "A", Body: "x"},
				{Title: "B", Body: "y"},
			},
		},
		{
			name: "header without body",
			text: "# Lonely",
			expected: []Segment{
				{Title: "Lonely", Body: ""},
			},
		},
		{
			name:     "empty document",
			text:     "  \n\n",
			expected: []Segment{},
		},
		{
			name: "hash without space is not a header",
			text: "# A\n#hashtag line",
			expected: []Segment{
				{Title: "A", Body: "#hashtag line"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitDocument(tt.text)
			if len(result) != len(tt.expected) {
				t.Fatalf("SplitDocument() returned %d segments, want %d: %#v", len(result), len(tt.expected), result)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("segment %d = %#v, want %#v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSplitDocumentPreservesOrder(t *testing.T) {
	segments := SplitDocument("# C\n1\n# A\n2\n# B\n3")

	want := []string{"C", "A", "B"}
	for i, seg := range segments {
		if seg.Title != want[i] {
			t.Errorf("segment %d title = %q, want %q", i, seg.Title, want[i])
		}
	}
}
