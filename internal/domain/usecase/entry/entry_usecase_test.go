package entry

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
	errs "github.com/mehrdad-arman/daytime-service/internal/domain/error"
	"github.com/mehrdad-arman/daytime-service/internal/domain/format"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/domain/port/usecase"
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

func (l *silentLogger) SetLevel(coreport.LogLevel)    {}
func (l *silentLogger) GetLevel() coreport.LogLevel   { return coreport.LogLevelError }
func (l *silentLogger) Debug(string, map[string]any)  {}
func (l *silentLogger) Info(string, map[string]any)   {}
func (l *silentLogger) Warn(string, map[string]any)   {}
func (l *silentLogger) Error(string, map[string]any)  {}
func (l *silentLogger) Flush() error                  { return nil }

// fakeEntryRepo is an in-memory stand-in for the database repository
type fakeEntryRepo struct {
	tp      coreport.TimeProvider
	nextID  uint64
	entries map[uint64]*entity.ClockEntry
}

func newFakeEntryRepo(tp coreport.TimeProvider) *fakeEntryRepo {
	return &fakeEntryRepo{
		tp:      tp,
		nextID:  1,
		entries: make(map[uint64]*entity.ClockEntry),
	}
}

func (r *fakeEntryRepo) Create(_ context.Context, entry *entity.ClockEntry) error {
	for _, existing := range r.entries {
		if existing.Label == entry.Label {
			return errs.ErrDuplicateEntry
		}
	}
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id uint64) (*entity.ClockEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, errs.ErrEntryNotFound
	}
	return entry, nil
}

func (r *fakeEntryRepo) GetByLabel(_ context.Context, label string) (*entity.ClockEntry, error) {
	for _, entry := range r.entries {
		if entry.Label == label {
			return entry, nil
		}
	}
	return nil, errs.ErrEntryNotFound
}

func (r *fakeEntryRepo) List(_ context.Context) ([]*entity.ClockEntry, error) {
	out := make([]*entity.ClockEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Time().ToMicroseconds() < out[j].Time().ToMicroseconds()
	})
	return out, nil
}

func (r *fakeEntryRepo) Update(_ context.Context, entry *entity.ClockEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return errs.ErrEntryNotFound
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeEntryRepo) ShiftTime(ctx context.Context, id uint64, deltaMicros int64) (*entity.ClockEntry, error) {
	entry, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entry.Shift(coreport.DurationFromMicroseconds(deltaMicros), r.tp); err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := r.entries[id]; !ok {
		return errs.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func newTestUseCase(t *testing.T) (usecase.EntryUseCase, *fakeEntryRepo) {
	t.Helper()
	tp := &fixedTimeProvider{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	repo := newFakeEntryRepo(tp)
	uc := NewUseCase(repo, format.DefaultRegistry(), tp, &silentLogger{}, "HH:mm:ss")
	return uc, repo
}

func createEntry(t *testing.T, uc usecase.EntryUseCase, label string, h, m, s int) *usecase.EntryResponse {
	t.Helper()
	resp, err := uc.CreateEntry(context.Background(), label, usecase.TimeFields{Hour: h, Minute: m, Second: s})
	require.NoError(t, err)
	return resp
}

func TestCreateEntry(t *testing.T) {
	t.Run("Successful creation assigns an ID", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		resp := createEntry(t, uc, "standup", 9, 30, 0)

		assert.Equal(t, uint64(1), resp.ID)
		assert.Equal(t, "standup", resp.Label)
		assert.Equal(t, "09:30:00.000000", resp.Time)
		assert.Equal(t, int64(34_200_000_000), resp.Micros)
		assert.Equal(t, uint64(0), resp.AdjustmentCount)
	})

	t.Run("Invalid time fields are rejected before persistence", func(t *testing.T) {
		uc, repo := newTestUseCase(t)

		_, err := uc.CreateEntry(context.Background(), "broken", usecase.TimeFields{Hour: 24})

		require.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Empty(t, repo.entries)
	})

	t.Run("Duplicate label is rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		createEntry(t, uc, "standup", 9, 30, 0)

		_, err := uc.CreateEntry(context.Background(), "standup", usecase.TimeFields{Hour: 10})

		assert.ErrorIs(t, err, errs.ErrDuplicateEntry)
	})

	t.Run("Empty label is rejected", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.CreateEntry(context.Background(), "", usecase.TimeFields{Hour: 10})

		assert.ErrorIs(t, err, errs.ErrInvalidLabel)
	})
}

func TestGetEntry(t *testing.T) {
	uc, _ := newTestUseCase(t)
	created := createEntry(t, uc, "lunch", 12, 0, 0)

	t.Run("Existing entry", func(t *testing.T) {
		resp, err := uc.GetEntry(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "lunch", resp.Label)
	})

	t.Run("Missing entry", func(t *testing.T) {
		_, err := uc.GetEntry(context.Background(), 999)
		assert.ErrorIs(t, err, errs.ErrEntryNotFound)
	})

	t.Run("Zero ID", func(t *testing.T) {
		_, err := uc.GetEntry(context.Background(), 0)
		assert.ErrorIs(t, err, errs.ErrInvalidEntryID)
	})
}

func TestListEntries(t *testing.T) {
	uc, _ := newTestUseCase(t)
	createEntry(t, uc, "evening", 20, 0, 0)
	createEntry(t, uc, "morning", 8, 0, 0)
	createEntry(t, uc, "noon", 12, 0, 0)

	entries, err := uc.ListEntries(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "morning", entries[0].Label)
	assert.Equal(t, "noon", entries[1].Label)
	assert.Equal(t, "evening", entries[2].Label)
}

func TestShiftEntry(t *testing.T) {
	t.Run("Forward shift", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		created := createEntry(t, uc, "standup", 9, 30, 0)

		resp, err := uc.ShiftEntry(context.Background(), created.ID, "90m")

		require.NoError(t, err)
		assert.Equal(t, "11:00:00.000000", resp.Time)
		assert.Equal(t, uint64(1), resp.AdjustmentCount)
	})

	t.Run("Backward shift", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		created := createEntry(t, uc, "standup", 9, 30, 0)

		resp, err := uc.ShiftEntry(context.Background(), created.ID, "-1.5h")

		require.NoError(t, err)
		assert.Equal(t, "08:00:00.000000", resp.Time)
	})

	t.Run("Unparseable offset", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		created := createEntry(t, uc, "standup", 9, 30, 0)

		_, err := uc.ShiftEntry(context.Background(), created.ID, "ninety minutes")

		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
	})

	t.Run("Shift past midnight fails and preserves the entry", func(t *testing.T) {
		uc, _ := newTestUseCase(t)
		created := createEntry(t, uc, "late", 23, 0, 0)

		_, err := uc.ShiftEntry(context.Background(), created.ID, "2h")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrTimeOverflow)

		resp, err := uc.GetEntry(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "23:00:00.000000", resp.Time)
		assert.Equal(t, uint64(0), resp.AdjustmentCount)
	})

	t.Run("Missing entry", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.ShiftEntry(context.Background(), 42, "1h")
		assert.ErrorIs(t, err, errs.ErrEntryNotFound)
	})
}

func TestDifference(t *testing.T) {
	uc, _ := newTestUseCase(t)
	morning := createEntry(t, uc, "morning", 9, 0, 0)
	evening := createEntry(t, uc, "evening", 17, 30, 0)

	t.Run("Positive when to is later", func(t *testing.T) {
		resp, err := uc.Difference(context.Background(), morning.ID, evening.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(30_600_000_000), resp.Micros)
		assert.Equal(t, "8h30m0s", resp.Duration)
	})

	t.Run("Negative when to is earlier", func(t *testing.T) {
		resp, err := uc.Difference(context.Background(), evening.ID, morning.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(-30_600_000_000), resp.Micros)
		assert.Equal(t, "-8h30m0s", resp.Duration)
	})

	t.Run("Missing operand", func(t *testing.T) {
		_, err := uc.Difference(context.Background(), morning.ID, 999)
		assert.ErrorIs(t, err, errs.ErrEntryNotFound)
	})
}

func TestFormatEntry(t *testing.T) {
	uc, _ := newTestUseCase(t)
	created := createEntry(t, uc, "standup", 9, 5, 3)

	t.Run("Explicit pattern", func(t *testing.T) {
		resp, err := uc.FormatEntry(context.Background(), created.ID, "H:m:s")

		require.NoError(t, err)
		assert.Equal(t, "9:5:3", resp.Rendered)
		assert.Equal(t, "H:m:s", resp.Pattern)
	})

	t.Run("Empty pattern falls back to the default", func(t *testing.T) {
		resp, err := uc.FormatEntry(context.Background(), created.ID, "")

		require.NoError(t, err)
		assert.Equal(t, "HH:mm:ss", resp.Pattern)
		assert.Equal(t, "09:05:03", resp.Rendered)
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		_, err := uc.FormatEntry(context.Background(), created.ID, "YYYY")

		assert.ErrorIs(t, err, errs.ErrUnknownSymbol)
		assert.True(t, errs.IsConfigurationError(err))
	})
}

func TestDeleteEntry(t *testing.T) {
	uc, repo := newTestUseCase(t)
	created := createEntry(t, uc, "obsolete", 6, 0, 0)

	require.NoError(t, uc.DeleteEntry(context.Background(), created.ID))
	assert.Empty(t, repo.entries)

	err := uc.DeleteEntry(context.Background(), created.ID)
	assert.ErrorIs(t, err, errs.ErrEntryNotFound)
}
