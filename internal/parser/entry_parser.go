package parser

import (
	"regexp"
	"strings"
	"time"
)

// ParsedEntry is an emotion entry parsed from one line of text
type ParsedEntry struct {
	Name     string
	Date     string // YYYY-MM-DD, empty when not given
	Duration string // raw minutes text, empty when not given
	Reason   string
	Errors   []string
}

var (
	entryDateRegex     = regexp.MustCompile(`(?:^|\s)@(\S+)`)
	entryDurationRegex = regexp.MustCompile(`(?:^|\s)\+(\d+)(?:m|min)?(?:\s|$)`)
)

// ParseEntry extracts metadata from a quick entry line.
// Syntax: "Emotion name +15 @2024-05-01: reason text"
//
//	+N or +Nm     duration in minutes
//	@YYYY-MM-DD   date (also @today, @yesterday)
//	: text        everything after the first colon is the reason
func ParseEntry(input string, now time.Time) ParsedEntry {
	result := ParsedEntry{Errors: []string{}}

	head := input
	if i := strings.Index(input, ":"); i >= 0 {
		head = input[:i]
		result.Reason = strings.TrimSpace(input[i+1:])
	}

	// Extract date (@2024-05-01, @today, @yesterday)
	if matches := entryDateRegex.FindStringSubmatch(head); len(matches) > 1 {
		switch token := strings.ToLower(matches[1]); token {
		case "today":
			result.Date = FormatDate(now)
		case "yesterday":
			result.Date = FormatDate(now.AddDate(0, 0, -1))
		default:
			if IsValidDate(matches[1]) {
				result.Date = matches[1]
			} else {
				result.Errors = append(result.Errors, "Invalid date '"+matches[1]+"'. Use: YYYY-MM-DD, today or yesterday")
			}
		}
		head = entryDateRegex.ReplaceAllString(head, " ")
	}

	// Extract duration (+15, +15m, +15min)
	if matches := entryDurationRegex.FindStringSubmatch(head); len(matches) > 1 {
		result.Duration = matches[1]
		head = entryDurationRegex.ReplaceAllString(head, " ")
	}

	// Whatever is left names the emotion
	result.Name = strings.Join(strings.Fields(head), " ")

	return result
}
