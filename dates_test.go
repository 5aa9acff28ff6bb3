package main

import "testing"

func TestClassifyTitle(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		expectedTitle  string
		expectedTag    Tag
		expectedParsed bool
	}{
		{"daily jot", "Mon, 5 Mar, 2024", "March 05, 2024", TagDailyJots, true},
		{"two digit day", "Tue, 12 Dec, 2023", "December 12, 2023", TagDailyJots, true},
		{"lowercase month", "Tue, 12 dec, 2023", "December 12, 2023", TagDailyJots, true},
		{"weekday not checked against date", "Sun, 1 Jan, 2024", "January 01, 2024", TagDailyJots, true},
		{"plain title", "Project Ideas", "Project Ideas", TagImported, false},
		{"full weekday name", "Monday, 5 Mar, 2024", "Monday, 5 Mar, 2024", TagImported, false},
		{"lowercase weekday", "mon, 5 Mar, 2024", "mon, 5 Mar, 2024", TagImported, false},
		{"empty", "", "", TagImported, false},

		// Matches the pattern but not the strict date layout: the title is
		// kept verbatim and still tagged as a daily jot.
		{"impossible day", "Fri, 31 Feb, 2024", "Fri, 31 Feb, 2024", TagDailyJots, false},
		{"unknown month", "Mon, 5 Foo, 2024", "Mon, 5 Foo, 2024", TagDailyJots, false},
		{"trailing text", "Mon, 5 Mar, 2024 (late)", "Mon, 5 Mar, 2024 (late)", TagDailyJots, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, tag, parsed := classifyTitle(tt.title)
			if title != tt.expectedTitle {
				t.Errorf("classifyTitle() title = %q, want %q", title, tt.expectedTitle)
			}
			if tag != tt.expectedTag {
				t.Errorf("classifyTitle() tag = %q, want %q", tag, tt.expectedTag)
			}
			if parsed != tt.expectedParsed {
				t.Errorf("classifyTitle() parsed = %v, want %v", parsed, tt.expectedParsed)
			}
		})
	}
}

func TestParseAndFormatDate(t *testing.T) {
	formatted, ok := parseAndFormatDate("Sat, 29 Feb, 2020")
	if !ok || formatted != "February 29, 2020" {
		t.Errorf("parseAndFormatDate() = %q, %v, want %q, true", formatted, ok, "February 29, 2020")
	}

	formatted, ok = parseAndFormatDate("Thu, 29 Feb, 2023")
	if ok || formatted != "Thu, 29 Feb, 2023" {
		t.Errorf("parseAndFormatDate() = %q, %v, want original string and false", formatted, ok)
	}
}
