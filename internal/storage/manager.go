package storage

import (
	"errors"
	"fmt"

	"github.com/AgwuChukwuma/Phone-Notifier/internal/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var ErrNotConnected = errors.New("storage manager is not connected")

type Manager struct {
	connectionString string
	db               *gorm.DB
}

var _ entity.DialRecorder = (*Manager)(nil)

func NewManager(connectionString string) *Manager {
	return &Manager{connectionString: connectionString}
}

func (m *Manager) Connect() error {
	var err error

	if m.db != nil {
		return nil
	}

	m.db, err = gorm.Open(postgres.Open(m.connectionString), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "phone_", // table for `DialRecord` is `phone_dial_records`
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		m.db = nil
		return fmt.Errorf("connect to database: %w", err)
	}

	return nil
}

func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate creates or updates the dial history table
func (m *Manager) Migrate() error {
	if m.db == nil {
		return ErrNotConnected
	}
	if err := m.db.AutoMigrate(&entity.DialRecord{}); err != nil {
		return fmt.Errorf("migrate dial records: %w", err)
	}
	return nil
}

func (m *Manager) SaveDial(record *entity.DialRecord) error {
	if m.db == nil {
		return ErrNotConnected
	}
	if err := m.db.Create(record).Error; err != nil {
		return fmt.Errorf("save dial record: %w", err)
	}
	return nil
}

// RecentDials returns up to limit latest dial records, newest first
func (m *Manager) RecentDials(limit int) ([]entity.DialRecord, error) {
	if m.db == nil {
		return nil, ErrNotConnected
	}
	var records []entity.DialRecord
	// Find yields an empty slice, not ErrRecordNotFound, when nothing matches
	if err := m.db.Order("dialed_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load dial records: %w", err)
	}
	return records, nil
}
