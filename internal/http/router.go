package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelplanner/internal/config"
	h "travelplanner/internal/http/handlers"
	"travelplanner/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the handlers need.
type Deps struct {
	Itinerary h.ItineraryHandler
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	mountItinerary(api, deps)
	api.GET("/routes", h.Routes)

	// root paths, same handlers
	mountItinerary(r.Group(""), deps)

	h.SetRouter(r)
	return r
}

func mountItinerary(g *gin.RouterGroup, deps Deps) {
	g.GET("/health", h.Health)
	g.POST("/generate-itinerary", deps.Itinerary.GenerateItinerary)
	g.POST("/export-pdf", deps.Itinerary.ExportPDF)
}
