package delivery

import (
	"net/http"

	"discursos-backend/internal/deputy/usecase"

	"github.com/gin-gonic/gin"
)

type DeputyHandler struct {
	deputyUsecase usecase.DeputyUsecase
}

func NewDeputyHandler(deputyUsecase usecase.DeputyUsecase) *DeputyHandler {
	return &DeputyHandler{
		deputyUsecase: deputyUsecase,
	}
}

func (h *DeputyHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.deputyUsecase.SearchByName(c.Request.Context(), c.Query("term")))
}
