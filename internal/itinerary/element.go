package itinerary

// ElementKind tags a DocumentElement variant.
type ElementKind int

const (
	KindTitle ElementKind = iota + 1
	KindSubtitle
	KindSpacer
	KindMetadataTable
	KindSectionHeading
	KindSubsectionLabel
	KindBullet
	KindBody
	KindPageBreak
	KindFooter
)

var kindNames = map[ElementKind]string{
	KindTitle:           "title",
	KindSubtitle:        "subtitle",
	KindSpacer:          "spacer",
	KindMetadataTable:   "metadata_table",
	KindSectionHeading:  "section_heading",
	KindSubsectionLabel: "subsection_label",
	KindBullet:          "bullet",
	KindBody:            "body",
	KindPageBreak:       "page_break",
	KindFooter:          "footer",
}

func (k ElementKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Spacer heights in points (72 per inch).
const (
	SpacerAfterSubtitle = 0.15 * 72
	SpacerAfterTable    = 0.3 * 72
	SpacerBlankLine     = 0.1 * 72
	SpacerAfterSection  = 0.08 * 72
	SpacerBeforeFooter  = 0.3 * 72
)

// MetadataRow is one (bold label, value) pair of the trip summary table.
type MetadataRow struct {
	Label string
	Value string
}

// Element is a single, flat document element. Only the fields relevant to
// Kind are set: Text for textual kinds, Height for spacers, Rows for the table.
type Element struct {
	Kind   ElementKind
	Text   string
	Height float64
	Rows   []MetadataRow
}

func Spacer(height float64) Element { return Element{Kind: KindSpacer, Height: height} }

func PageBreak() Element { return Element{Kind: KindPageBreak} }

func textElement(kind ElementKind, text string) Element {
	return Element{Kind: kind, Text: text}
}
