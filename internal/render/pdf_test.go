package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"travelplanner/internal/domain/models"
	"travelplanner/internal/itinerary"

	pdflib "github.com/ledongthuc/pdf"
)

func assembled(text string) []itinerary.Element {
	trip := models.TripRequest{
		Source:      "Berlin",
		Destination: "Montmartre",
		Dates:       "June 2025",
		Travelers:   models.TravelersOf("3"),
		Interests:   "painting, cafés, long walks along the river and very long descriptions that need to wrap inside the table cell",
	}
	return itinerary.Assemble(trip, itinerary.Classify(text), itinerary.DocumentMeta{
		GeneratedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	})
}

func readPDF(t *testing.T, data []byte) *pdflib.Reader {
	t.Helper()
	r, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("read rendered pdf: %v", err)
	}
	return r
}

func pageText(t *testing.T, r *pdflib.Reader) string {
	t.Helper()
	var buf strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			t.Fatalf("extract page %d: %v", i, err)
		}
		buf.WriteString(text)
	}
	return buf.String()
}

func TestPDFRendererSinglePage(t *testing.T) {
	data, err := PDFRenderer{Title: "Trip"}.Render(assembled("Day 1: Arrival\n* Sacre-Coeur at sunrise\nLunch: creperie"))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", data[:min(len(data), 16)])
	}

	r := readPDF(t, data)
	if r.NumPage() != 1 {
		t.Fatalf("got %d pages, want 1", r.NumPage())
	}
	if text := pageText(t, r); !strings.Contains(text, "Montmartre") {
		t.Fatalf("rendered text does not mention destination: %q", text)
	}
}

func TestPDFRendererPageBreaks(t *testing.T) {
	text := strings.Join([]string{
		"Day 1", "Walk",
		"Day 2", "Museum",
		"Day 3", "Park",
		"Day 4", "Departure",
	}, "\n")

	data, err := PDFRenderer{}.Render(assembled(text))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if n := readPDF(t, data).NumPage(); n != 2 {
		t.Fatalf("got %d pages, want 2", n)
	}
}

func TestPDFRendererRejectsUnknownElement(t *testing.T) {
	_, err := PDFRenderer{}.Render([]itinerary.Element{{Kind: itinerary.ElementKind(42)}})
	if err == nil {
		t.Fatalf("expected error for unknown element kind")
	}
}

func TestPDFRendererHandlesMarkupAndUnicode(t *testing.T) {
	text := "## Séjour à Paris\n**Day 1:** *Arrivée* – café\n• Book at https://example.com/booking\n1. Pack light"
	if _, err := (PDFRenderer{}).Render(assembled(text)); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
}
