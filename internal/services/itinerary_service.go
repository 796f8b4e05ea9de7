package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelplanner/internal/domain"
	"travelplanner/internal/domain/models"
	"travelplanner/internal/generator"
	"travelplanner/internal/itinerary"
	"travelplanner/internal/utils"
)

const (
	MsgMissingFields = "Missing required fields"
	MsgNoItinerary   = "No itinerary to export"
)

// DocumentRenderer turns assembled elements into a binary document.
type DocumentRenderer interface {
	Render(elements []itinerary.Element) ([]byte, error)
}

// ItineraryService generates itinerary text and exports it as PDF.
// A value is built per request; it holds no state between calls.
type ItineraryService struct {
	Generator generator.TextGenerator
	Renderer  DocumentRenderer
	Brand     string
	Timeout   time.Duration
	RequestID string
	Now       func() time.Time
}

// ExportResult is a rendered document and its download name.
type ExportResult struct {
	PDF      []byte
	Filename string
}

// Generate asks the model for an itinerary and returns its text verbatim.
func (s ItineraryService) Generate(ctx context.Context, trip models.TripRequest) (string, error) {
	if missing := trip.MissingFields(); len(missing) > 0 {
		return "", domain.ValidationError{Field: strings.Join(missing, ","), Msg: MsgMissingFields}
	}
	if s.Generator == nil {
		return "", domain.GenerationError{Err: errors.New("text generator is not configured")}
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	utils.LogEvent(s.RequestID, "itinerary", "generate", "destination="+utils.NormalizeSpace(trip.Destination))
	text, err := s.Generator.Generate(ctx, generator.BuildPrompt(trip))
	if err != nil {
		return "", domain.GenerationError{Err: err}
	}
	return text, nil
}

// Export classifies the itinerary text, assembles the document and renders it.
// Any failure after validation, including a renderer panic, is an ExportError.
func (s ItineraryService) Export(trip models.TripRequest, text string) (res ExportResult, err error) {
	if text == "" {
		return res, domain.ValidationError{Field: "itinerary", Msg: MsgNoItinerary}
	}
	if s.Renderer == nil {
		return res, domain.ExportError{Err: errors.New("document renderer is not configured")}
	}

	defer func() {
		if p := recover(); p != nil {
			res = ExportResult{}
			err = domain.ExportError{Err: fmt.Errorf("%v", p)}
		}
	}()

	now := s.now()
	sections := itinerary.Classify(text)
	elements := itinerary.Assemble(trip, sections, itinerary.DocumentMeta{
		Brand:       s.Brand,
		GeneratedAt: now,
	})

	data, err := s.Renderer.Render(elements)
	if err != nil {
		return res, domain.ExportError{Err: err}
	}

	utils.LogEvent(s.RequestID, "itinerary", "export",
		fmt.Sprintf("sections=%d elements=%d bytes=%d", len(sections), len(elements), len(data)))

	return ExportResult{PDF: data, Filename: ExportFilename(trip.Destination, now)}, nil
}

// ExportFilename derives travel_plan_<destination>_<YYYYMMDD>.pdf.
func ExportFilename(destination string, at time.Time) string {
	return fmt.Sprintf("travel_plan_%s_%s.pdf", utils.FilenamePart(destination), utils.FormatCompactDate(at))
}

func (s ItineraryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
