package store

import (
	"context"
	"errors"

	"campus-llm/backend/internal/models"

	"gorm.io/gorm"
)

// WaitlistDB is the Postgres-backed waitlist store, used when a
// database is configured so signups survive restarts. The other record
// collections stay in memory.
type WaitlistDB struct {
	db *gorm.DB
}

// NewWaitlistDB creates a waitlist store over the given connection.
func NewWaitlistDB(db *gorm.DB) *WaitlistDB {
	return &WaitlistDB{db: db}
}

// Add inserts a signup, rejecting duplicate emails and student ids.
func (s *WaitlistDB) Add(ctx context.Context, entry *models.WaitlistEntry) error {
	var existing models.WaitlistEntry
	result := s.db.WithContext(ctx).
		Where("email = ? OR student_id = ?", entry.Email, entry.StudentID).
		First(&existing)
	if result.Error == nil {
		return ErrDuplicateSignup
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if entry.Status == "" {
		entry.Status = "pending"
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

// Count returns the number of waitlist signups.
func (s *WaitlistDB) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.WaitlistEntry{}).Count(&count).Error
	return count, err
}
