package api

import (
	"log"
	"time"

	deputyUsecasePkg "discursos-backend/internal/deputy/usecase"
	referenceUsecasePkg "discursos-backend/internal/reference/usecase"
	speechUsecasePkg "discursos-backend/internal/speech/usecase"
	"discursos-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	speechUsecase    speechUsecasePkg.SpeechUsecase
	deputyUsecase    deputyUsecasePkg.DeputyUsecase
	referenceUsecase referenceUsecasePkg.ReferenceUsecase
	config           *config.Config
}

func NewHandler(speechUc speechUsecasePkg.SpeechUsecase, deputyUc deputyUsecasePkg.DeputyUsecase, referenceUc referenceUsecasePkg.ReferenceUsecase, cfg *config.Config) *Handler {
	return &Handler{
		speechUsecase:    speechUc,
		deputyUsecase:    deputyUc,
		referenceUsecase: referenceUc,
		config:           cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// Request-id + access-log middleware
	r.Use(func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()
		log.Printf("[HTTP] %s %s %s -> %d (%s)", requestID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	})

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.speechUsecase, h.deputyUsecase, h.referenceUsecase)

	return r.Run(addr)
}
