package handlers

import (
	"mime"
	"net/http"
	"time"

	"travelplanner/internal/domain/models"
	"travelplanner/internal/generator"
	"travelplanner/internal/http/middleware"
	"travelplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// ItineraryHandler serves itinerary generation and PDF export.
type ItineraryHandler struct {
	Generator generator.TextGenerator
	Renderer  services.DocumentRenderer
	Brand     string
	Timeout   time.Duration
	Now       func() time.Time
}

type exportRequest struct {
	models.TripRequest
	Itinerary string `json:"itinerary"`
}

func (h ItineraryHandler) service(c *gin.Context) services.ItineraryService {
	return services.ItineraryService{
		Generator: h.Generator,
		Renderer:  h.Renderer,
		Brand:     h.Brand,
		Timeout:   h.Timeout,
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
}

// POST /api/generate-itinerary
func (h ItineraryHandler) GenerateItinerary(c *gin.Context) {
	var trip models.TripRequest
	if !BindJSONObject(c, &trip) {
		return
	}

	text, err := h.service(c).Generate(c.Request.Context(), trip)
	if err != nil {
		RespondDomainError(c, "generate", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "itinerary": text})
}

// POST /api/export-pdf
func (h ItineraryHandler) ExportPDF(c *gin.Context) {
	var req exportRequest
	if !BindJSONObject(c, &req) {
		return
	}

	res, err := h.service(c).Export(req.TripRequest, req.Itinerary)
	if err != nil {
		RespondDomainError(c, "export", err)
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}
