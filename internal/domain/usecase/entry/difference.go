package entry

import (
	"context"

	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
)

// Difference computes the signed span from one entry's time to another's,
// positive when the "to" entry is later in the day
func (u *UseCase) Difference(ctx context.Context, fromID, toID uint64) (*usecase.DifferenceResponse, error) {
	if fromID == 0 || toID == 0 {
		return nil, errs.ErrInvalidEntryID
	}

	from, err := u.entryRepo.GetByID(ctx, fromID)
	if err != nil {
		u.logger.Error("Failed to get difference operand", map[string]any{
			"entry_id": fromID,
			"error":    err.Error(),
		})
		return nil, err
	}

	to, err := u.entryRepo.GetByID(ctx, toID)
	if err != nil {
		u.logger.Error("Failed to get difference operand", map[string]any{
			"entry_id": toID,
			"error":    err.Error(),
		})
		return nil, err
	}

	span := to.Time().Difference(from.Time())

	return &usecase.DifferenceResponse{
		FromID:   fromID,
		ToID:     toID,
		Micros:   span.Microseconds(),
		Duration: span.Std().String(),
	}, nil
}
