package parser

import (
	"strings"

	"github.com/balkashynov/moodlog/internal/models"
)

// NormalizeReason trims the reason and substitutes the placeholder when nothing is left
func NormalizeReason(input string) string {
	reason := strings.TrimSpace(input)
	if reason == "" {
		return models.PlaceholderReason
	}
	return reason
}
