package handler

import (
	"net/http"

	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ClockHandler handles wall-clock rendering HTTP requests
type ClockHandler struct {
	clockUseCase usecase.ClockUseCase
	logger       coreport.Logger
}

// NewClockHandler creates a new clock handler instance
func NewClockHandler(
	clockUseCase usecase.ClockUseCase,
	logger coreport.Logger,
) *ClockHandler {
	return &ClockHandler{
		clockUseCase: clockUseCase,
		logger:       logger,
	}
}

// Now handles the GET /clock/now endpoint
func (h *ClockHandler) Now(c *gin.Context) {
	resp, err := h.clockUseCase.Now(c.Request.Context(), c.Query("pattern"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClockResponse{
		Pattern:  resp.Pattern,
		Rendered: resp.Rendered,
		Micros:   resp.Micros,
	})
}
