package render

import (
	"bytes"
	"fmt"

	"travelplanner/internal/itinerary"

	"github.com/phpdave11/gofpdf"
)

// PDFRenderer writes assembled itinerary elements to a Letter-size PDF.
type PDFRenderer struct {
	Title  string
	Author string
}

// Render lays out elements in order and returns the encoded PDF.
func (r PDFRenderer) Render(elements []itinerary.Element) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(true, marginBottom)
	if r.Title != "" {
		pdf.SetTitle(r.Title, true)
	}
	if r.Author != "" {
		pdf.SetAuthor(r.Author, true)
	}
	pdf.AddPage()

	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	for i, el := range elements {
		if err := w.element(el); err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, el.Kind, err)
		}
		if pdf.Err() {
			return nil, fmt.Errorf("element %d (%s): %w", i, el.Kind, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type writer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (w *writer) element(el itinerary.Element) error {
	switch el.Kind {
	case itinerary.KindSpacer:
		w.pdf.Ln(el.Height)
	case itinerary.KindPageBreak:
		w.pdf.AddPage()
	case itinerary.KindMetadataTable:
		w.table(el.Rows)
	case itinerary.KindTitle, itinerary.KindSubtitle, itinerary.KindFooter:
		w.centered(styles[el.Kind], el.Text)
	case itinerary.KindSectionHeading, itinerary.KindSubsectionLabel, itinerary.KindBody:
		w.paragraph(styles[el.Kind], "", parseInline(el.Text))
	case itinerary.KindBullet:
		w.paragraph(styles[el.Kind], bulletMark, parseInline(el.Text))
	default:
		return fmt.Errorf("unsupported element kind %d", el.Kind)
	}
	return nil
}

func (w *writer) setStyle(st textStyle, bold, italic bool, c rgb) {
	style := ""
	if st.bold || bold {
		style += "B"
	}
	if st.italic || italic {
		style += "I"
	}
	w.pdf.SetFont(fontFamily, style, st.size)
	w.pdf.SetTextColor(c.r, c.g, c.b)
}

func (w *writer) centered(st textStyle, text string) {
	if st.spaceBefore > 0 {
		w.pdf.Ln(st.spaceBefore)
	}
	w.setStyle(st, false, false, st.color)
	w.pdf.MultiCell(0, st.leading, w.tr(plainText(parseInline(text))), "", "C", false)
	if st.spaceAfter > 0 {
		w.pdf.Ln(st.spaceAfter)
	}
}

// paragraph flows runs between the margins, shifted right by the style indent.
func (w *writer) paragraph(st textStyle, prefix string, runs []run) {
	left, _, _, _ := w.pdf.GetMargins()
	if st.spaceBefore > 0 {
		w.pdf.Ln(st.spaceBefore)
	}
	if st.indent > 0 {
		w.pdf.SetLeftMargin(left + st.indent)
	}
	w.pdf.SetX(left + st.indent)

	if prefix != "" {
		w.setStyle(st, false, false, st.color)
		w.pdf.Write(st.leading, w.tr(prefix))
	}
	for _, r := range runs {
		if r.link != "" {
			w.setStyle(st, r.bold, r.italic, colorLink)
			w.pdf.WriteLinkString(st.leading, w.tr(r.text), r.link)
			continue
		}
		w.setStyle(st, r.bold, r.italic, st.color)
		w.pdf.Write(st.leading, w.tr(r.text))
	}
	w.pdf.Ln(st.leading)

	if st.indent > 0 {
		w.pdf.SetLeftMargin(left)
		w.pdf.SetX(left)
	}
	if st.spaceAfter > 0 {
		w.pdf.Ln(st.spaceAfter)
	}
}

// table draws the trip summary as a two-column grid with alternating row fills.
func (w *writer) table(rows []itinerary.MetadataRow) {
	pdf := w.pdf
	left, _, right, bottom := pdf.GetMargins()
	pageW, pageH := pdf.GetPageSize()
	x := left + (pageW-left-right-tableLabelWidth-tableValueWidth)/2
	st := tableStyle

	pdf.SetDrawColor(colorGrid.r, colorGrid.g, colorGrid.b)
	pdf.SetLineWidth(tableGridWidth)

	for i, row := range rows {
		w.setStyle(st, false, false, st.color)
		lines := pdf.SplitLines([]byte(w.tr(row.Value)), tableValueWidth-2*tableCellPadX)
		n := max(len(lines), 1)
		h := float64(n)*st.leading + 2*tableCellPadY

		y := pdf.GetY()
		if y+h > pageH-bottom {
			pdf.AddPage()
			y = pdf.GetY()
		}

		fill := colorWhite
		if i%2 == 1 {
			fill = colorRowAlt
		}
		pdf.SetFillColor(fill.r, fill.g, fill.b)
		pdf.Rect(x, y, tableLabelWidth, h, "FD")
		pdf.Rect(x+tableLabelWidth, y, tableValueWidth, h, "FD")

		w.setStyle(st, true, false, st.color)
		pdf.SetXY(x+tableCellPadX, y+(h-st.leading)/2)
		pdf.CellFormat(tableLabelWidth-2*tableCellPadX, st.leading, w.tr(row.Label), "", 0, "L", false, 0, "")

		w.setStyle(st, false, false, st.color)
		for j, line := range lines {
			pdf.SetXY(x+tableLabelWidth+tableCellPadX, y+tableCellPadY+float64(j)*st.leading)
			pdf.CellFormat(tableValueWidth-2*tableCellPadX, st.leading, string(line), "", 0, "L", false, 0, "")
		}
		pdf.SetXY(left, y+h)
	}
}
