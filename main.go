package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelplanner/internal/config"
	"travelplanner/internal/generator"
	router "travelplanner/internal/http"
	"travelplanner/internal/http/handlers"
	"travelplanner/internal/render"

	"github.com/gin-gonic/gin"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "listen address (overrides APP_ADDR)")
	listModels := flag.Bool("list-models", false, "log the provider's generation models at startup")
	flag.Parse()

	_, _ = maxprocs.Set(maxprocs.Logger(log.Printf))

	env, err := intconfig.LoadEnv(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		env.AppAddr = *addr
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx := context.Background()
	gen, err := generator.New(ctx, generator.Settings{
		Provider: env.LLMProvider,
		Model:    env.Model(),
		APIKey:   env.APIKey(),
		BaseURL:  env.OpenAIBaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize llm client: %v", err)
	}
	log.Printf("LLM provider %s initialized (model %s)", env.LLMProvider, env.Model())

	if *listModels || env.ListModels {
		logModels(ctx, gen)
	}

	r := router.NewRouter(env, router.Deps{
		Itinerary: handlers.ItineraryHandler{
			Generator: gen,
			Renderer:  render.PDFRenderer{Title: env.BrandTitle, Author: env.BrandTitle},
			Brand:     env.BrandTitle,
			Timeout:   env.GenerateTimeout,
		},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       env.HTTPReadTimeout,
		WriteTimeout:      env.HTTPWriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped.")
}

// logModels replaces import-time model discovery; failures are logged, not fatal.
func logModels(ctx context.Context, gen generator.TextGenerator) {
	lister, ok := gen.(generator.ModelLister)
	if !ok {
		log.Printf("Model listing is not supported by this provider")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	models, err := lister.ListModels(ctx)
	if err != nil {
		log.Printf("Could not list models: %v", err)
		return
	}
	log.Println("Available models:")
	for _, m := range models {
		line := "  - " + m.Name
		if m.DisplayName != "" {
			line += fmt.Sprintf(" (%s)", m.DisplayName)
		}
		log.Println(line)
	}
}
