package models

// StatGroup aggregates every event sharing one date and emotion name
type StatGroup struct {
	Date                 string `json:"date"`
	EmotionName          string `json:"emotion_name"`
	OccurrenceCount      int    `json:"occurrence_count"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	Reasons              string `json:"reasons"` // joined with "; " in insertion order
}

// TotalDuration sums the durations of all groups.
func TotalDuration(groups []StatGroup) int {
	total := 0
	for _, g := range groups {
		total += g.TotalDurationMinutes
	}
	return total
}
