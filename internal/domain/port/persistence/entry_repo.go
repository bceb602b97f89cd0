package persistence

import (
	"context"

	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
)

// EntryRepository defines persistence operations for clock entries
type EntryRepository interface {
	// Create stores a new clock entry
	Create(ctx context.Context, entry *entity.ClockEntry) error

	// GetByID retrieves an entry by its ID
	GetByID(ctx context.Context, id uint64) (*entity.ClockEntry, error)

	// GetByLabel retrieves an entry by its unique label
	GetByLabel(ctx context.Context, label string) (*entity.ClockEntry, error)

	// List retrieves all entries ordered by their time of day
	List(ctx context.Context) ([]*entity.ClockEntry, error)

	// Update persists changes to an existing entry
	Update(ctx context.Context, entry *entity.ClockEntry) error

	// ShiftTime atomically shifts an entry's time by the given signed
	// microsecond offset, failing when the shift would cross midnight
	ShiftTime(ctx context.Context, id uint64, deltaMicros int64) (*entity.ClockEntry, error)

	// Delete removes an entry by ID
	Delete(ctx context.Context, id uint64) error
}
