package db

import (
	"errors"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/balkashynov/moodlog/internal/models"
	"github.com/balkashynov/moodlog/internal/parser"
)

// reasonSeparator joins the reasons of one statistics group
const reasonSeparator = "; "

// Store is the append-only emotion log. A mutex serialises every operation on
// the single connection, so the store is safe to share between goroutines even
// though the UI drives it from one.
type Store struct {
	mu  sync.Mutex
	db  *gorm.DB
	now func() time.Time
}

// NewStore wraps an already opened gorm connection. Most callers want Open instead.
func NewStore(gdb *gorm.DB) *Store {
	return &Store{db: gdb, now: time.Now}
}

// Initialize creates the emotions table if it doesn't exist yet
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return openFailed(errors.New("store is not open"))
	}
	if err := runMigrations(s.db); err != nil {
		return openFailed(err)
	}
	return nil
}

// RecordEvent appends one occurrence of the named emotion on date.
//
// date must be a strict YYYY-MM-DD calendar date; otherwise a *ValidationError
// wrapping ErrInvalidDate is returned and nothing is written. durationText that
// doesn't parse as a non-negative integer is stored as 0, and a blank reasonText
// becomes models.PlaceholderReason.
func (s *Store) RecordEvent(name, date, durationText, reasonText string) (*models.EmotionEvent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Err: ErrEmptyName}
	}
	if !parser.IsValidDate(date) {
		return nil, &ValidationError{Field: "date", Value: date, Err: ErrInvalidDate}
	}

	event := models.EmotionEvent{
		Name:            name,
		Count:           1,
		DurationMinutes: parser.ParseDurationMinutes(durationText),
		Reason:          parser.NormalizeReason(reasonText),
		Date:            date,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, writeFailed(errors.New("store is closed"))
	}

	event.CreatedAt = s.now()
	if err := s.db.Create(&event).Error; err != nil {
		return nil, writeFailed(err)
	}

	return &event, nil
}

// Statistics groups the log by date and emotion name, ordered by date then name.
// Reasons inside a group keep insertion order. An empty log yields an empty slice.
func (s *Store) Statistics() ([]models.StatGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, queryFailed(errors.New("store is closed"))
	}

	groups := []models.StatGroup{}
	err := s.db.Model(&models.EmotionEvent{}).
		Select("date, name AS emotion_name, COUNT(*) AS occurrence_count, "+
			"COALESCE(SUM(duration_minutes), 0) AS total_duration_minutes, "+
			"COALESCE(GROUP_CONCAT(reason, ? ORDER BY id), '') AS reasons", reasonSeparator).
		Group("date, name").
		Order("date ASC, name ASC").
		Scan(&groups).Error
	if err != nil {
		return nil, queryFailed(err)
	}

	return groups, nil
}

// Count returns the number of stored events
func (s *Store) Count() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return 0, queryFailed(errors.New("store is closed"))
	}

	var n int64
	if err := s.db.Model(&models.EmotionEvent{}).Count(&n).Error; err != nil {
		return 0, queryFailed(err)
	}
	return n, nil
}

// ClearAll irreversibly deletes every event. Confirmation is the caller's job.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return writeFailed(errors.New("store is closed"))
	}

	err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.EmotionEvent{}).Error
	if err != nil {
		return writeFailed(err)
	}
	return nil
}

// Close releases the database connection. Calling it twice is harmless.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	s.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
