package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelplanner/internal/itinerary"
	"travelplanner/internal/render"

	"github.com/gin-gonic/gin"
)

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(context.Context, string) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubRenderer struct {
	out   []byte
	err   error
	calls int
}

func (s *stubRenderer) Render([]itinerary.Element) ([]byte, error) {
	s.calls++
	return s.out, s.err
}

func newTestEngine(h ItineraryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/generate-itinerary", h.GenerateItinerary)
	r.POST("/export-pdf", h.ExportPDF)
	return r
}

func doPost(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, w.Body.String())
	}
	return out
}

const fullTripJSON = `{"source":"Lagos","destination":"Accra","dates":"Dec 20-24","travelers":4,"interests":"beaches"}`

func TestGenerateItinerarySuccess(t *testing.T) {
	gen := &stubGenerator{text: "Day 1: Labadi Beach"}
	w := doPost(newTestEngine(ItineraryHandler{Generator: gen}), "/generate-itinerary", fullTripJSON)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["success"] != true || body["itinerary"] != "Day 1: Labadi Beach" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestGenerateItineraryBadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty body", "", msgInvalidBody},
		{"malformed json", `{"source":`, msgInvalidBody},
		{"empty object", `{}`, msgInvalidBody},
		{"json array", `[1,2]`, msgInvalidBody},
		{"missing field", `{"source":"Lagos","destination":"Accra","dates":"Dec","travelers":2}`, "Missing required fields"},
		{"zero travelers", `{"source":"Lagos","destination":"Accra","dates":"Dec","travelers":0,"interests":"x"}`, "Missing required fields"},
		{"empty string field", `{"source":"","destination":"Accra","dates":"Dec","travelers":"2","interests":"x"}`, "Missing required fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{text: "unused"}
			w := doPost(newTestEngine(ItineraryHandler{Generator: gen}), "/generate-itinerary", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}
			if got := decodeBody(t, w)["error"]; got != tt.wantErr {
				t.Fatalf("error = %v, want %q", got, tt.wantErr)
			}
			if gen.calls != 0 {
				t.Fatalf("generator should not be called")
			}
		})
	}
}

func TestGenerateItineraryUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("API key not valid")}
	w := doPost(newTestEngine(ItineraryHandler{Generator: gen}), "/generate-itinerary", fullTripJSON)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false || body["error"] != "API key not valid" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestExportPDFSuccess(t *testing.T) {
	rend := &stubRenderer{out: []byte("%PDF-1.3 stub")}
	h := ItineraryHandler{
		Renderer: rend,
		Now:      func() time.Time { return time.Date(2025, 3, 5, 10, 0, 0, 0, time.Local) },
	}
	w := doPost(newTestEngine(h), "/export-pdf", `{"destination":"Accra","itinerary":"Day 1: Beach"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("Content-Type = %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment") || !strings.Contains(cd, "travel_plan_Accra_20250305.pdf") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if w.Body.String() != "%PDF-1.3 stub" {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestExportPDFMissingItinerary(t *testing.T) {
	rend := &stubRenderer{out: []byte("%PDF")}
	w := doPost(newTestEngine(ItineraryHandler{Renderer: rend}), "/export-pdf", `{"destination":"Accra","itinerary":""}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decodeBody(t, w)["error"]; got != "No itinerary to export" {
		t.Fatalf("error = %v", got)
	}
	if rend.calls != 0 {
		t.Fatalf("renderer should not be called")
	}
}

func TestExportPDFRenderFailure(t *testing.T) {
	rend := &stubRenderer{err: errors.New("page too small")}
	w := doPost(newTestEngine(ItineraryHandler{Renderer: rend}), "/export-pdf", `{"itinerary":"Day 1"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != false || body["error"] != "page too small" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestExportPDFWithRealRenderer(t *testing.T) {
	h := ItineraryHandler{Renderer: render.PDFRenderer{}}
	payload := `{"source":"Lagos","destination":"Accra","dates":"Dec","travelers":"2","interests":"food",` +
		`"itinerary":"## Overview\nA relaxed week.\nDay 1: Arrival\n* Jamestown lighthouse\nDinner: Buka"}`
	w := doPost(newTestEngine(h), "/export-pdf", payload)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Fatalf("body is not a PDF")
	}
}
