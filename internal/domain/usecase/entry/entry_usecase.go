package entry

import (
	"context"

	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	"github.com/mehrdad-arman/daytime-service/internal/domain/format"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/persistence"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
)

// UseCase implements the clock entry business logic
type UseCase struct {
	entryRepo      persistence.EntryRepository
	registry       *format.Registry
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	defaultPattern string
}

// NewUseCase creates a new entry use case instance
func NewUseCase(
	entryRepo persistence.EntryRepository,
	registry *format.Registry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultPattern string,
) usecase.EntryUseCase {
	return &UseCase{
		entryRepo:      entryRepo,
		registry:       registry,
		timeProvider:   timeProvider,
		logger:         logger,
		defaultPattern: defaultPattern,
	}
}

// toResponse converts an entry entity to the standardized response
func toResponse(e *entity.ClockEntry) *usecase.EntryResponse {
	return &usecase.EntryResponse{
		ID:              e.ID,
		Label:           e.Label,
		Time:            e.Time().String(),
		Micros:          e.Time().ToMicroseconds(),
		AdjustmentCount: e.AdjustmentCount,
	}
}

// CreateEntry creates a new named entry at the given time of day
func (u *UseCase) CreateEntry(ctx context.Context, label string, fields usecase.TimeFields) (*usecase.EntryResponse, error) {
	t, err := entity.NewTimeOfDay(fields.Hour, fields.Minute, fields.Second, fields.Millisecond, fields.Microsecond)
	if err != nil {
		u.logger.Warn("Rejected entry with invalid time fields", map[string]any{
			"label": label,
			"error": err.Error(),
		})
		return nil, err
	}

	newEntry, err := entity.NewPendingEntry(label, t, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.entryRepo.Create(ctx, newEntry); err != nil {
		u.logger.Error("Failed to create entry", map[string]any{
			"label": label,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Entry created", map[string]any{
		"entry_id": newEntry.ID,
		"label":    newEntry.Label,
		"time":     newEntry.Time().String(),
	})

	return toResponse(newEntry), nil
}

// GetEntry retrieves a single entry by ID
func (u *UseCase) GetEntry(ctx context.Context, id uint64) (*usecase.EntryResponse, error) {
	if id == 0 {
		return nil, errs.ErrInvalidEntryID
	}

	e, err := u.entryRepo.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("Failed to get entry", map[string]any{
			"entry_id": id,
			"error":    err.Error(),
		})
		return nil, err
	}

	return toResponse(e), nil
}

// ListEntries retrieves all entries ordered by time of day
func (u *UseCase) ListEntries(ctx context.Context) ([]*usecase.EntryResponse, error) {
	entries, err := u.entryRepo.List(ctx)
	if err != nil {
		u.logger.Error("Failed to list entries", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	responses := make([]*usecase.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

// DeleteEntry removes an entry by ID
func (u *UseCase) DeleteEntry(ctx context.Context, id uint64) error {
	if id == 0 {
		return errs.ErrInvalidEntryID
	}

	if err := u.entryRepo.Delete(ctx, id); err != nil {
		u.logger.Error("Failed to delete entry", map[string]any{
			"entry_id": id,
			"error":    err.Error(),
		})
		return err
	}

	u.logger.Info("Entry deleted", map[string]any{
		"entry_id": id,
	})
	return nil
}
