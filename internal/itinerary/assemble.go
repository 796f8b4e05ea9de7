package itinerary

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"travelplanner/internal/domain/models"
	"travelplanner/internal/utils"
)

// DefaultBrand is the document title used when none is configured.
const DefaultBrand = "Muzammils Travel Plan AI"

const (
	sectionsPerPage = 3
	maxLabelRunes   = 100
)

// DocumentMeta holds the values of an assembled document that do not come from the trip.
type DocumentMeta struct {
	Brand       string
	GeneratedAt time.Time
}

// Assemble lays out trip metadata and classified sections as an ordered element list.
// Output order follows input order exactly.
func Assemble(trip models.TripRequest, sections []Section, meta DocumentMeta) []Element {
	brand := strings.TrimSpace(meta.Brand)
	if brand == "" {
		brand = DefaultBrand
	}

	out := []Element{
		textElement(KindTitle, brand),
		textElement(KindSubtitle, fmt.Sprintf("Discover %s", trip.Destination)),
		Spacer(SpacerAfterSubtitle),
		{Kind: KindMetadataTable, Rows: metadataRows(trip)},
		Spacer(SpacerAfterTable),
	}

	for idx, section := range sections {
		if idx > 0 && idx%sectionsPerPage == 0 {
			out = append(out, PageBreak())
		}
		out = append(out, textElement(KindSectionHeading, strings.TrimSpace(section.Title)))

		if content := strings.TrimSpace(section.Content); content != "" {
			for _, line := range strings.Split(content, "\n") {
				out = append(out, contentElement(strings.TrimSpace(line)))
			}
		}
		out = append(out, Spacer(SpacerAfterSection))
	}

	out = append(out,
		Spacer(SpacerBeforeFooter),
		textElement(KindFooter, "Generated on "+utils.FormatLongDateTime(meta.GeneratedAt)),
	)
	return out
}

func metadataRows(trip models.TripRequest) []MetadataRow {
	return []MetadataRow{
		{Label: "Destination:", Value: trip.Destination},
		{Label: "From:", Value: trip.Source},
		{Label: "Dates:", Value: trip.Dates},
		{Label: "Travelers:", Value: trip.Travelers.String()},
		{Label: "Interests:", Value: trip.Interests},
	}
}

// contentElement classifies one trimmed content line.
func contentElement(line string) Element {
	switch {
	case line == "":
		return Spacer(SpacerBlankLine)
	case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "•"), strings.HasPrefix(line, "*"):
		return textElement(KindBullet, strings.TrimSpace(strings.TrimLeft(line, "-•* ")))
	case strings.Contains(line, ":") && utf8.RuneCountInString(line) < maxLabelRunes:
		return textElement(KindSubsectionLabel, line)
	default:
		return textElement(KindBody, line)
	}
}
