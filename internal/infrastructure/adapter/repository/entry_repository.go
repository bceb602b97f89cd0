package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryRepository implements the EntryRepository interface using GORM
type EntryRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewEntryRepository creates a new EntryRepository instance
func NewEntryRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *EntryRepository {
	return &EntryRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a clock entry model to an entity
func (r *EntryRepository) modelToEntity(entryModel *model.ClockEntry) (*entity.ClockEntry, error) {
	t, err := entity.FromMicroseconds(entryModel.TimeMicros)
	if err != nil {
		r.logger.Error("Stored time out of range", map[string]any{
			"entry_id": entryModel.ID,
			"micros":   entryModel.TimeMicros,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: corrupt time value for entry %d", errs.ErrInternalServer, entryModel.ID)
	}

	e, err := entity.NewClockEntry(entryModel.ID, entryModel.Label, t, r.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create entry entity: %s", errs.ErrInternalServer, err.Error())
	}

	// Preserve the stored lifecycle fields
	e.CreatedAt = entryModel.CreatedAt
	e.UpdatedAt = entryModel.UpdatedAt
	e.AdjustmentCount = entryModel.AdjustmentCount

	return e, nil
}

// handleDatabaseError standardizes database error handling
func (r *EntryRepository) handleDatabaseError(operation string, err error, entryID uint64) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"entry_id": entryID,
		"error":    err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrEntryNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEntry
	}

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrEntryLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create stores a new clock entry and assigns its ID
func (r *EntryRepository) Create(ctx context.Context, e *entity.ClockEntry) error {
	r.logger.Debug("Creating clock entry", map[string]any{
		"label": e.Label,
		"time":  e.Time().String(),
	})

	entryModel := model.ClockEntry{
		ID:              e.ID,
		Label:           e.Label,
		TimeMicros:      e.Time().ToMicroseconds(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		AdjustmentCount: e.AdjustmentCount,
	}

	result := r.db.WithContext(ctx).Create(&entryModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating entry", result.Error, e.ID)
	}

	// Propagate the assigned ID back to the entity
	e.ID = entryModel.ID

	r.logger.Info("Clock entry created", map[string]any{
		"entry_id": e.ID,
		"label":    e.Label,
		"time":     e.Time().String(),
	})
	return nil
}

// GetByID retrieves an entry by its ID
func (r *EntryRepository) GetByID(ctx context.Context, id uint64) (*entity.ClockEntry, error) {
	var entryModel model.ClockEntry
	result := r.db.WithContext(ctx).First(&entryModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting entry", result.Error, id)
	}

	return r.modelToEntity(&entryModel)
}

// GetByLabel retrieves an entry by its unique label
func (r *EntryRepository) GetByLabel(ctx context.Context, label string) (*entity.ClockEntry, error) {
	var entryModel model.ClockEntry
	result := r.db.WithContext(ctx).Where("label = ?", label).First(&entryModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting entry by label", result.Error, 0)
	}

	return r.modelToEntity(&entryModel)
}

// List retrieves all entries ordered by their time of day
func (r *EntryRepository) List(ctx context.Context) ([]*entity.ClockEntry, error) {
	var entryModels []model.ClockEntry
	result := r.db.WithContext(ctx).Order("time_micros asc").Find(&entryModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing entries", result.Error, 0)
	}

	entries := make([]*entity.ClockEntry, 0, len(entryModels))
	for i := range entryModels {
		e, err := r.modelToEntity(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Update persists changes to an existing entry
func (r *EntryRepository) Update(ctx context.Context, e *entity.ClockEntry) error {
	result := r.db.WithContext(ctx).Model(&model.ClockEntry{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"time_micros":      e.Time().ToMicroseconds(),
			"updated_at":       e.UpdatedAt,
			"adjustment_count": e.AdjustmentCount,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating entry", result.Error, e.ID)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Entry not found during update", map[string]any{
			"entry_id": e.ID,
		})
		return errs.ErrEntryNotFound
	}

	return nil
}

// ShiftTime atomically shifts an entry's time by the given signed
// microsecond offset inside a transaction, holding a row lock so concurrent
// shifts serialize. Fails without modifying the row when the shift would
// cross a midnight boundary.
func (r *EntryRepository) ShiftTime(ctx context.Context, id uint64, deltaMicros int64) (*entity.ClockEntry, error) {
	r.logger.Debug("Shifting entry time", map[string]any{
		"entry_id":     id,
		"delta_micros": deltaMicros,
	})

	var shifted *entity.ClockEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entryModel model.ClockEntry
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&entryModel, id)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrEntryNotFound
			}
			return result.Error
		}

		candidate := entryModel.TimeMicros + deltaMicros
		if candidate < 0 {
			return errs.NewTimeRangeError(entryModel.TimeMicros, deltaMicros, errs.ErrTimeUnderflow)
		}
		if candidate > entity.MaxMicroseconds {
			return errs.NewTimeRangeError(entryModel.TimeMicros, deltaMicros, errs.ErrTimeOverflow)
		}

		entryModel.TimeMicros = candidate
		entryModel.AdjustmentCount++
		entryModel.UpdatedAt = r.timeProvider.Now()

		result = tx.Model(&entryModel).Updates(map[string]interface{}{
			"time_micros":      entryModel.TimeMicros,
			"updated_at":       entryModel.UpdatedAt,
			"adjustment_count": entryModel.AdjustmentCount,
		})
		if result.Error != nil {
			return result.Error
		}

		var err error
		shifted, err = r.modelToEntity(&entryModel)
		return err
	})

	if err != nil {
		if errors.Is(err, errs.ErrEntryNotFound) || errs.IsRangeError(err) {
			return nil, err
		}
		if r.errorClassifier.IsLockError(err) {
			r.logger.Warn("Entry is locked by another operation", map[string]any{
				"entry_id": id,
				"error":    err.Error(),
			})
			return nil, errs.ErrEntryLocked
		}
		r.logger.Error("Database error during time shift", map[string]any{
			"entry_id": id,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Entry time shifted", map[string]any{
		"entry_id":     id,
		"delta_micros": deltaMicros,
		"time":         shifted.Time().String(),
		"adjustments":  shifted.AdjustmentCount,
	})

	return shifted, nil
}

// Delete removes an entry by ID
func (r *EntryRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.ClockEntry{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting entry", result.Error, id)
	}

	if result.RowsAffected == 0 {
		return errs.ErrEntryNotFound
	}

	return nil
}
