package delivery

import (
	"net/http"

	"discursos-backend/internal/reference/usecase"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
}

func NewReferenceHandler(referenceUsecase usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUsecase: referenceUsecase,
	}
}

func (h *ReferenceHandler) GetParties(c *gin.Context) {
	c.JSON(http.StatusOK, h.referenceUsecase.Parties(c.Request.Context()))
}

func (h *ReferenceHandler) GetStates(c *gin.Context) {
	c.JSON(http.StatusOK, h.referenceUsecase.States())
}

func (h *ReferenceHandler) GetSpeechTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.referenceUsecase.SpeechTypes())
}
