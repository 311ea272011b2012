package tui

import "github.com/balkashynov/moodlog/internal/models"

// Store is the part of the emotion log the interface needs. *db.Store satisfies it.
type Store interface {
	RecordEvent(name, date, durationText, reasonText string) (*models.EmotionEvent, error)
	Statistics() ([]models.StatGroup, error)
	ClearAll() error
}
