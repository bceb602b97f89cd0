package clock

import (
	"context"

	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
	"github.com/mehrdad-arman/daytime-service/internal/domain/format"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
)

// UseCase renders the ambient wall clock through the resolver registry.
// This is a deliberately separate operation from entry formatting: stored
// entries render their own fields, this renders "now".
type UseCase struct {
	registry       *format.Registry
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
	defaultPattern string
}

// NewUseCase creates a new clock use case instance
func NewUseCase(
	registry *format.Registry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultPattern string,
) usecase.ClockUseCase {
	return &UseCase{
		registry:       registry,
		timeProvider:   timeProvider,
		logger:         logger,
		defaultPattern: defaultPattern,
	}
}

// Now renders the current wall-clock time-of-day with the given pattern
func (u *UseCase) Now(ctx context.Context, pattern string) (*usecase.ClockResponse, error) {
	if pattern == "" {
		pattern = u.defaultPattern
	}

	now := entity.FromClock(u.timeProvider.Now())

	rendered, err := format.Render(u.registry, pattern, now)
	if err != nil {
		u.logger.Warn("Clock rendering failed", map[string]any{
			"pattern": pattern,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.ClockResponse{
		Pattern:  pattern,
		Rendered: rendered,
		Micros:   now.ToMicroseconds(),
	}, nil
}
