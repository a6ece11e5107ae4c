package api

import (
	deputyDelivery "discursos-backend/internal/deputy/delivery"
	deputyUsecase "discursos-backend/internal/deputy/usecase"
	referenceDelivery "discursos-backend/internal/reference/delivery"
	referenceUsecase "discursos-backend/internal/reference/usecase"
	speechDelivery "discursos-backend/internal/speech/delivery"
	speechUsecase "discursos-backend/internal/speech/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, speechUc speechUsecase.SpeechUsecase, deputyUc deputyUsecase.DeputyUsecase, referenceUc referenceUsecase.ReferenceUsecase) {
	speechHandler := speechDelivery.NewSpeechHandler(speechUc)
	deputyHandler := deputyDelivery.NewDeputyHandler(deputyUc)
	referenceHandler := referenceDelivery.NewReferenceHandler(referenceUc)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Speech search and detail
	r.GET("/search", speechHandler.Search)
	r.GET("/speeches/:id", speechHandler.GetSpeech)
	r.GET("/share/:id", speechHandler.Share)

	// Deputy name search
	r.GET("/deputies/search", deputyHandler.Search)

	// Reference data for the filter widgets
	r.GET("/parties", referenceHandler.GetParties)
	r.GET("/states", referenceHandler.GetStates)
	r.GET("/speech-types", referenceHandler.GetSpeechTypes)
}
