package render

import "travelplanner/internal/itinerary"

const (
	fontFamily = "Helvetica"

	// Letter, in points.
	marginSide   = 0.6 * 72
	marginTop    = 0.75 * 72
	marginBottom = 0.75 * 72

	tableLabelWidth = 1.5 * 72
	tableValueWidth = 4.5 * 72
	tableCellPadX   = 6.0
	tableCellPadY   = 8.0
	tableGridWidth  = 0.5

	bulletMark = "•  "
)

type rgb struct{ r, g, b int }

var (
	colorBlack   = rgb{0, 0, 0}
	colorPrimary = rgb{0x66, 0x7e, 0xea}
	colorAccent  = rgb{0x76, 0x4b, 0xa2}
	colorGrey    = rgb{0x80, 0x80, 0x80}
	colorLink    = rgb{0x1a, 0x0d, 0xab}
	colorGrid    = rgb{0xe0, 0xe0, 0xe0}
	colorRowAlt  = rgb{0xf9, 0xf9, 0xf9}
	colorWhite   = rgb{0xff, 0xff, 0xff}
)

type textStyle struct {
	size        float64
	bold        bool
	italic      bool
	color       rgb
	centered    bool
	leading     float64
	spaceBefore float64
	spaceAfter  float64
	indent      float64
}

var styles = map[itinerary.ElementKind]textStyle{
	itinerary.KindTitle: {
		size: 28, bold: true, color: colorPrimary, centered: true,
		leading: 34, spaceAfter: 6,
	},
	itinerary.KindSubtitle: {
		size: 12, italic: true, color: colorAccent, centered: true,
		leading: 14.4, spaceAfter: 20,
	},
	itinerary.KindSectionHeading: {
		size: 13, bold: true, color: colorBlack,
		leading: 15.6, spaceBefore: 8, spaceAfter: 6,
	},
	itinerary.KindSubsectionLabel: {
		size: 12, bold: true, color: colorAccent,
		leading: 14.4, spaceBefore: 8, spaceAfter: 8,
	},
	itinerary.KindBody: {
		size: 10, color: colorBlack,
		leading: 14, spaceAfter: 6,
	},
	itinerary.KindBullet: {
		size: 10, color: colorBlack,
		leading: 14, spaceAfter: 6, indent: 20,
	},
	itinerary.KindFooter: {
		size: 9, italic: true, color: colorGrey, centered: true,
		leading: 10.8,
	},
}

// tableStyle applies to both columns of the metadata table.
var tableStyle = textStyle{size: 11, color: colorBlack, leading: 16}
