package migration

import (
	"github.com/mehrdad-arman/daytime-service/internal/domain/entity"
	coreport "github.com/mehrdad-arman/daytime-service/internal/domain/port/core"
	"github.com/mehrdad-arman/daytime-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Manager runs schema migrations and seeds
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll applies the schema for all models
func (m *Manager) MigrateAll() error {
	m.logger.Info("Running database migrations", nil)

	if err := m.db.AutoMigrate(&model.ClockEntry{}); err != nil {
		m.logger.Error("Migration failed", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

// SeedDefaultEntries creates the well-known entries (midnight, noon,
// end-of-day) if they don't exist yet. Existing labels are left untouched.
func (m *Manager) SeedDefaultEntries() error {
	now := m.timeProvider.Now()

	defaults := []model.ClockEntry{
		{Label: "midnight", TimeMicros: entity.Min.ToMicroseconds(), CreatedAt: now, UpdatedAt: now},
		{Label: "noon", TimeMicros: entity.Noon.ToMicroseconds(), CreatedAt: now, UpdatedAt: now},
		{Label: "end-of-day", TimeMicros: entity.Max.ToMicroseconds(), CreatedAt: now, UpdatedAt: now},
	}

	result := m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "label"}},
		DoNothing: true,
	}).Create(&defaults)

	if result.Error != nil {
		m.logger.Error("Failed to seed default entries", map[string]any{
			"error": result.Error.Error(),
		})
		return result.Error
	}

	m.logger.Info("Default entries seeded", map[string]any{
		"created": result.RowsAffected,
	})
	return nil
}
