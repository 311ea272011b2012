package models

import "time"

// PlaceholderReason is stored when an event is recorded without a reason
const PlaceholderReason = "not specified"

// EmotionEvent is one recorded occurrence of an emotion on a calendar date.
// Rows are append-only: nothing updates them after insertion.
type EmotionEvent struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Name            string    `gorm:"not null;index:idx_emotions_date_name,priority:2" json:"name"`
	Count           int       `gorm:"not null;default:1" json:"count"`
	DurationMinutes int       `gorm:"not null;default:0;check:chk_emotions_duration,duration_minutes >= 0" json:"duration_minutes"`
	Reason          string    `gorm:"not null" json:"reason"`
	Date            string    `gorm:"type:text;not null;index:idx_emotions_date_name,priority:1" json:"date"` // YYYY-MM-DD
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName keeps the table name stable regardless of gorm's pluralisation rules
func (EmotionEvent) TableName() string {
	return "emotions"
}
