package clock

import (
	"context"
	"testing"
	"time"

	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	"github.com/mehrdad-arman/daytime-service/internal/domain/format"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTimeProvider pins Now() to a known instant for deterministic tests
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func (p *fixedTimeProvider) Since(t time.Time) coreport.Duration {
	return coreport.Duration(p.now.Sub(t))
}

func (p *fixedTimeProvider) Until(t time.Time) coreport.Duration {
	return coreport.Duration(t.Sub(p.now))
}

func (p *fixedTimeProvider) Sleep(coreport.Duration) {}

func (p *fixedTimeProvider) WithTimeout(ctx context.Context, _ coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

func (p *fixedTimeProvider) ParseDuration(s string) (coreport.Duration, error) {
	d, err := time.ParseDuration(s)
	return coreport.Duration(d), err
}

// silentLogger satisfies the logger port without producing output
type silentLogger struct{}

func (l *silentLogger) SetLevel(coreport.LogLevel)   {}
func (l *silentLogger) GetLevel() coreport.LogLevel  { return coreport.LogLevelError }
func (l *silentLogger) Debug(string, map[string]any) {}
func (l *silentLogger) Info(string, map[string]any)  {}
func (l *silentLogger) Warn(string, map[string]any)  {}
func (l *silentLogger) Error(string, map[string]any) {}
func (l *silentLogger) Flush() error                 { return nil }

func newTestClock(t *testing.T, now time.Time) *UseCase {
	t.Helper()
	uc := NewUseCase(format.DefaultRegistry(), &fixedTimeProvider{now: now}, &silentLogger{}, "HH:mm:ss")
	return uc.(*UseCase)
}

func TestClockNow(t *testing.T) {
	nineFiveThree := time.Date(2025, 6, 1, 9, 5, 3, 0, time.UTC)

	t.Run("Default pattern", func(t *testing.T) {
		uc := newTestClock(t, nineFiveThree)

		resp, err := uc.Now(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "HH:mm:ss", resp.Pattern)
		assert.Equal(t, "09:05:03", resp.Rendered)
		assert.Equal(t, int64(9*3600+5*60+3)*1_000_000, resp.Micros)
	})

	t.Run("Explicit pattern", func(t *testing.T) {
		uc := newTestClock(t, nineFiveThree)

		resp, err := uc.Now(context.Background(), "H:m:s")

		require.NoError(t, err)
		assert.Equal(t, "9:5:3", resp.Rendered)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		uc := newTestClock(t, nineFiveThree)

		_, err := uc.Now(context.Background(), "YYYY")

		assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
	})

	t.Run("Sub-second truncation", func(t *testing.T) {
		uc := newTestClock(t, time.Date(2025, 6, 1, 23, 59, 59, 999_999_999, time.UTC))

		resp, err := uc.Now(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, "23:59:59", resp.Rendered)
		assert.Equal(t, int64(86_399_999_999), resp.Micros)
	})
}
