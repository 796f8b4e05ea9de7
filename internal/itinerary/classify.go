package itinerary

import (
	"regexp"
	"strings"
	"unicode"
)

// OverviewTitle names content that appears before the first heading.
const OverviewTitle = "Trip Overview"

// Section is one titled block of itinerary text, in order of appearance.
type Section struct {
	Title   string
	Content string
}

var keywordHeading = regexp.MustCompile(`(?i)^(Day\s+\d+|Accommodation|Transportation|Attraction|Restaurant|Budget|Tip)`)

// Classify splits generated itinerary text into titled sections using line heuristics.
// The order of checks matters: heading tests run before bullet stripping.
func Classify(text string) []Section {
	var (
		sections []Section
		title    string
		open     bool
		content  []string
	)

	flush := func() {
		switch {
		case open:
			sections = append(sections, Section{Title: title, Content: strings.Join(content, "\n")})
		case len(content) > 0:
			sections = append(sections, Section{Title: OverviewTitle, Content: strings.Join(content, "\n")})
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(content) > 0 {
				content = append(content, "")
			}
			continue
		}

		if isHeading(line) {
			heading := headingTitle(line)
			if heading == "" {
				// bare markers such as "***" are separators, not headings
				continue
			}
			flush()
			title, open = heading, true
			content = nil
			continue
		}

		line = strings.TrimSpace(strings.TrimLeft(line, "*- "))
		if line != "" {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, "##") ||
		strings.HasPrefix(line, "**") ||
		isUpper(line) ||
		keywordHeading.MatchString(line)
}

// headingTitle removes emphasis markers. A single leading "#" of a deeper
// markdown heading survives, matching the output existing consumers expect.
func headingTitle(line string) string {
	t := strings.ReplaceAll(line, "##", "")
	t = strings.ReplaceAll(t, "**", "")
	t = strings.TrimSpace(t)
	return strings.ReplaceAll(t, "*", "")
}

// isUpper reports whether s has at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
