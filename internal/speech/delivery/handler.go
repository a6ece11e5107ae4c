package delivery

import (
	"net/http"
	"strconv"

	"discursos-backend/internal/speech/domain"
	speechdto "discursos-backend/internal/speech/dto"
	"discursos-backend/internal/speech/usecase"

	"github.com/gin-gonic/gin"
)

const defaultPeriodDays = 30

type SpeechHandler struct {
	speechUsecase usecase.SpeechUsecase
}

func NewSpeechHandler(speechUsecase usecase.SpeechUsecase) *SpeechHandler {
	return &SpeechHandler{
		speechUsecase: speechUsecase,
	}
}

func (h *SpeechHandler) Search(c *gin.Context) {
	f := domain.SearchFilter{
		Term:  c.Query("term"),
		Party: c.Query("party"),
		State: c.Query("state"),
		Type:  c.Query("type"),
	}

	period, err := strconv.Atoi(c.DefaultQuery("period", strconv.Itoa(defaultPeriodDays)))
	if err != nil || period < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be a positive integer"})
		return
	}
	f.PeriodDays = period

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}
	f.Page = page

	if raw := c.Query("deputy_id"); raw != "" {
		deputyID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "deputy_id must be an integer"})
			return
		}
		f.DeputyID = deputyID
	}

	result, err := h.speechUsecase.Search(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSpeech is the detail view placeholder: the upstream API has no speech
// detail endpoint, so there is nothing to look up yet.
func (h *SpeechHandler) GetSpeech(c *gin.Context) {
	c.JSON(http.StatusOK, speechdto.SpeechDetailResponse{Speech: nil})
}

func (h *SpeechHandler) Share(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.Request.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	baseURL := scheme + "://" + c.Request.Host

	c.JSON(http.StatusOK, usecase.BuildShareLinks(baseURL, c.Param("id")))
}
