package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconRequired = "*"
	IconChevron  = "›"
)

// Text fragments
const (
	ErrorPrefix = "Error: "
)

// Layout sizing
const (
	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	// Mobile button sizing
	MobileButtonWidth     float32 = 60
	MobileRowButtonHeight float32 = 52

	MultilineEntryRows = 3
)

// Window sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
)

// Debounce durations
const (
	SearchDebounce = 150 * time.Millisecond
)
