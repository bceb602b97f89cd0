package entry

import (
	"context"

	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	"github.com/mehrdad-arman/daytime-service/internal/domain/format"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
)

// FormatEntry renders an entry's time with a symbol pattern. An empty
// pattern falls back to the configured default pattern so the endpoint
// always renders something useful.
func (u *UseCase) FormatEntry(ctx context.Context, id uint64, pattern string) (*usecase.FormatResponse, error) {
	if id == 0 {
		return nil, errs.ErrInvalidEntryID
	}

	e, err := u.entryRepo.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("Failed to get entry for formatting", map[string]any{
			"entry_id": id,
			"error":    err.Error(),
		})
		return nil, err
	}

	if pattern == "" {
		pattern = u.defaultPattern
	}

	rendered, err := format.Render(u.registry, pattern, e.Time())
	if err != nil {
		u.logger.Warn("Pattern rendering failed", map[string]any{
			"entry_id": id,
			"pattern":  pattern,
			"error":    err.Error(),
		})
		return nil, err
	}

	return &usecase.FormatResponse{
		ID:       id,
		Pattern:  pattern,
		Rendered: rendered,
	}, nil
}
