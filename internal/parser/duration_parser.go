package parser

import (
	"strconv"
	"strings"
)

// ParseDurationMinutes converts free-form user input into whole minutes.
// Anything that isn't a non-negative integer counts as 0 instead of an error,
// so a sloppy duration never blocks recording the emotion itself.
func ParseDurationMinutes(input string) int {
	minutes, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}
