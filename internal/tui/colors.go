package tui

// Color constants for the moodlog theme
const (
	// Base Colors
	ColorCardBackground = "#1E1A2E" // Modal background
	ColorBorder         = "#3A3F55" // Panel borders

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorPlaceholder   = "#8E95A6"
	ColorHelpText      = "240"

	// Accent Colors (warm sunset)
	ColorAccentMain   = "#F472B6" // Logo, active borders
	ColorAccentBright = "#FBCFE8" // Highlights, selected rows

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)
