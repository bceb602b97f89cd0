package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EntryHandler handles clock entry HTTP requests
type EntryHandler struct {
	entryUseCase usecase.EntryUseCase
	logger       coreport.Logger
}

// NewEntryHandler creates a new entry handler instance
func NewEntryHandler(
	entryUseCase usecase.EntryUseCase,
	logger coreport.Logger,
) *EntryHandler {
	return &EntryHandler{
		entryUseCase: entryUseCase,
		logger:       logger,
	}
}

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsDuplicateEntryError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrEntryLocked):
		return http.StatusConflict
	case domainerr.IsRangeError(err):
		return http.StatusUnprocessableEntity
	case domainerr.IsValidationError(err),
		domainerr.IsConfigurationError(err),
		errors.Is(err, domainerr.ErrInvalidDuration),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// parseEntryID extracts and validates an entry ID path parameter
func parseEntryID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidEntryID),
			Message: "Invalid entry ID format",
		})
		return 0, false
	}
	return id, true
}

// CreateEntry handles the POST /entries endpoint
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	resp, err := h.entryUseCase.CreateEntry(c.Request.Context(), req.Label, usecase.TimeFields{
		Hour:        req.Hour,
		Minute:      req.Minute,
		Second:      req.Second,
		Millisecond: req.Millisecond,
		Microsecond: req.Microsecond,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entryToDTO(resp))
}

// GetEntry handles the GET /entries/{entryId} endpoint
func (h *EntryHandler) GetEntry(c *gin.Context) {
	id, ok := parseEntryID(c, "entryId")
	if !ok {
		return
	}

	resp, err := h.entryUseCase.GetEntry(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entryToDTO(resp))
}

// ListEntries handles the GET /entries endpoint
func (h *EntryHandler) ListEntries(c *gin.Context) {
	entries, err := h.entryUseCase.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryToDTO(e))
	}
	c.JSON(http.StatusOK, out)
}

// ShiftEntry handles the POST /entries/{entryId}/shift endpoint
func (h *EntryHandler) ShiftEntry(c *gin.Context) {
	id, ok := parseEntryID(c, "entryId")
	if !ok {
		return
	}

	var req dto.ShiftEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request body",
		})
		return
	}

	resp, err := h.entryUseCase.ShiftEntry(c.Request.Context(), id, req.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entryToDTO(resp))
}

// Difference handles the GET /entries/{entryId}/difference/{toId} endpoint
func (h *EntryHandler) Difference(c *gin.Context) {
	fromID, ok := parseEntryID(c, "entryId")
	if !ok {
		return
	}
	toID, ok := parseEntryID(c, "toId")
	if !ok {
		return
	}

	resp, err := h.entryUseCase.Difference(c.Request.Context(), fromID, toID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DifferenceResponse{
		FromID:   resp.FromID,
		ToID:     resp.ToID,
		Micros:   resp.Micros,
		Duration: resp.Duration,
	})
}

// FormatEntry handles the GET /entries/{entryId}/format endpoint
func (h *EntryHandler) FormatEntry(c *gin.Context) {
	id, ok := parseEntryID(c, "entryId")
	if !ok {
		return
	}

	resp, err := h.entryUseCase.FormatEntry(c.Request.Context(), id, c.Query("pattern"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FormatResponse{
		ID:       resp.ID,
		Pattern:  resp.Pattern,
		Rendered: resp.Rendered,
	})
}

// DeleteEntry handles the DELETE /entries/{entryId} endpoint
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseEntryID(c, "entryId")
	if !ok {
		return
	}

	if err := h.entryUseCase.DeleteEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// entryToDTO converts a use case entry response to its API representation
func entryToDTO(e *usecase.EntryResponse) dto.EntryResponse {
	return dto.EntryResponse{
		ID:              e.ID,
		Label:           e.Label,
		Time:            e.Time,
		Micros:          e.Micros,
		AdjustmentCount: e.AdjustmentCount,
	}
}
