package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate strictly parses a YYYY-MM-DD calendar date.
// Rejects single-digit months/days, surrounding characters and impossible dates like 2024-02-30.
// The result is a pure calendar value in UTC; no timezone is interpreted.
func ParseDate(input string) (time.Time, error) {
	if !dateRegex.MatchString(input) {
		return time.Time{}, fmt.Errorf("invalid date format %q. Use: YYYY-MM-DD", input)
	}

	// time.Parse validates month range and day-of-month, leap years included
	date, err := time.Parse(DateLayout, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", input, err)
	}

	return date, nil
}

// IsValidDate reports whether input is a real calendar date in YYYY-MM-DD form
func IsValidDate(input string) bool {
	_, err := ParseDate(input)
	return err == nil
}

// FormatDate renders t as YYYY-MM-DD in t's own location
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current local date as YYYY-MM-DD
func Today() string {
	return FormatDate(time.Now())
}

// ComposeDate builds a YYYY-MM-DD string from separate year, month and day fields.
// Each part is trimmed and left-padded with zeros only when shorter than its width
// (4 for the year, 2 for month and day); longer parts are kept as typed so that
// ParseDate can reject them.
func ComposeDate(year, month, day string) string {
	return fmt.Sprintf("%s-%s-%s", zeroPad(year, 4), zeroPad(month, 2), zeroPad(day, 2))
}

func zeroPad(part string, width int) string {
	part = strings.TrimSpace(part)
	if len(part) >= width {
		return part
	}
	return strings.Repeat("0", width-len(part)) + part
}
