package main

import (
	"log"

	api "discursos-backend/cmd/api"
	deputyUsecase "discursos-backend/internal/deputy/usecase"
	referenceUsecase "discursos-backend/internal/reference/usecase"
	speechUsecase "discursos-backend/internal/speech/usecase"
	"discursos-backend/pkg/cache"
	"discursos-backend/pkg/camara"
	"discursos-backend/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Upstream client with per-attempt timeout and bounded retry
	client := camara.NewClient(cfg.CamaraBaseURL, cfg.UpstreamTimeout, cfg.UpstreamRetries, cfg.UpstreamRetryWait)

	// Process-wide reference-data cache
	refCache := cache.New()

	// Initialize use cases (dependency injection)
	deputyUsecaseInstance := deputyUsecase.NewDeputyUsecase(client, refCache, cfg.DeputyCacheTTL)
	referenceUsecaseInstance := referenceUsecase.NewReferenceUsecase(client, refCache, cfg.PartyCacheTTL)
	fetcher := speechUsecase.NewSpeechFetcher(client, cfg.SpeechItemCap, cfg.SummaryCutoff)
	speechUsecaseInstance := speechUsecase.NewSearchUsecase(deputyUsecaseInstance, fetcher, cfg.FanoutDeputyCap, cfg.FanoutWorkers, cfg.FanoutDeadline, cfg.PageSize)

	// Initialize HTTP handler
	handler := api.NewHandler(speechUsecaseInstance, deputyUsecaseInstance, referenceUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
