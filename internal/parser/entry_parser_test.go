package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := map[string]int{
		"15":    15,
		" 15 ":  15,
		"0":     0,
		"+7":    7,
		"":      0,
		"abc":   0,
		"15m":   0,
		"1.5":   0,
		"-10":   0,
		"99999": 99999,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, ParseDurationMinutes(input))
		})
	}
}

func TestNormalizeReason(t *testing.T) {
	assert.Equal(t, "not specified", NormalizeReason(""))
	assert.Equal(t, "not specified", NormalizeReason(" \t\n"))
	assert.Equal(t, "rain", NormalizeReason("  rain "))
	assert.Equal(t, "a; b", NormalizeReason("a; b"))
}

func TestParseEntry(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  ParsedEntry
	}{
		{
			name:  "name only",
			input: "Joy",
			want:  ParsedEntry{Name: "Joy", Errors: []string{}},
		},
		{
			name:  "everything",
			input: "Joy +20 @2024-05-01: walk in the park",
			want: ParsedEntry{
				Name: "Joy", Date: "2024-05-01", Duration: "20",
				Reason: "walk in the park", Errors: []string{},
			},
		},
		{
			name:  "multi-word name and minutes suffix",
			input: "Quiet joy +15m @today",
			want:  ParsedEntry{Name: "Quiet joy", Date: "2024-05-10", Duration: "15", Errors: []string{}},
		},
		{
			name:  "yesterday",
			input: "@yesterday Fear",
			want:  ParsedEntry{Name: "Fear", Date: "2024-05-09", Errors: []string{}},
		},
		{
			name:  "reason keeps later colons",
			input: "Anger: meeting at 10:30",
			want:  ParsedEntry{Name: "Anger", Reason: "meeting at 10:30", Errors: []string{}},
		},
		{
			name:  "plus inside a word is part of the name",
			input: "C+10",
			want:  ParsedEntry{Name: "C+10", Errors: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEntry(tt.input, now))
		})
	}
}

func TestParseEntry_InvalidDate(t *testing.T) {
	parsed := ParseEntry("Joy @2024-02-30", time.Now())
	assert.Equal(t, "Joy", parsed.Name)
	assert.Empty(t, parsed.Date)
	assert.Len(t, parsed.Errors, 1)
	assert.Contains(t, parsed.Errors[0], "2024-02-30")
}
