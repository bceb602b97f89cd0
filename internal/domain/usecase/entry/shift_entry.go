package entry

import (
	"context"
	"fmt"

	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
)

// ShiftEntry moves an entry's time by a signed offset string, e.g. "90m" or
// "-1.5h". The shift is applied atomically in the repository and fails with
// an overflow/underflow error when it would cross a midnight boundary.
func (u *UseCase) ShiftEntry(ctx context.Context, id uint64, offset string) (*usecase.EntryResponse, error) {
	if id == 0 {
		return nil, errs.ErrInvalidEntryID
	}

	d, err := u.timeProvider.ParseDuration(offset)
	if err != nil {
		u.logger.Warn("Rejected unparseable shift offset", map[string]any{
			"entry_id": id,
			"offset":   offset,
		})
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidDuration, offset)
	}

	shifted, err := u.entryRepo.ShiftTime(ctx, id, d.Microseconds())
	if err != nil {
		u.logger.Error("Failed to shift entry", map[string]any{
			"entry_id": id,
			"offset":   offset,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Entry shifted", map[string]any{
		"entry_id": id,
		"offset":   offset,
		"time":     shifted.Time().String(),
	})

	return toResponse(shifted), nil
}
