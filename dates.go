package main

import (
	"regexp"
	"time"
)

const (
	jotDateLayout     = "Mon, 2 Jan, 2006"
	displayDateLayout = "January 02, 2006"
)

// Anchored at the start only: trailing text still classifies as a daily jot.
var jotTitleRegex = regexp.MustCompile(`^(Mon|Tue|Wed|Thu|Fri|Sat|Sun), (\d{1,2} [A-Za-z]{3}, \d{4})`)

// isJotTitle reports whether a title looks like a daily jot header
func isJotTitle(title string) bool {
	return jotTitleRegex.MatchString(title)
}

// parseAndFormatDate converts "Mon, 5 Mar, 2024" into "March 05, 2024".
// The original string is returned with ok=false when it does not parse.
func parseAndFormatDate(title string) (string, bool) {
	t, err := time.Parse(jotDateLayout, title)
	if err != nil {
		return title, false
	}
	return t.Format(displayDateLayout), true
}

// classifyTitle returns the display title, the tag, and whether a date-like
// title parsed. Classification only depends on the title pattern.
func classifyTitle(title string) (formatted string, tag Tag, parsed bool) {
	if !isJotTitle(title) {
		return title, TagImported, false
	}

	formatted, parsed = parseAndFormatDate(title)
	if !parsed {
		debugLog("date-like title did not parse: %q", title)
	}
	return formatted, TagDailyJots, parsed
}
