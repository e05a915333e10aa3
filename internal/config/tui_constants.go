package config

// Layout constants.
const (
	// MinPaneWidth is the minimum width for a dashboard pane.
	MinPaneWidth = 24

	// CompactModeThreshold stacks panes vertically below this width.
	CompactModeThreshold = 90

	// TargetTitleWidth is the preferred width for task titles.
	TargetTitleWidth = 40
)

// Display limits.
const (
	// MaxVisibleSessions limits sessions shown per pane before scrolling.
	MaxVisibleSessions = 12

	// MaxShortfallsDisplayed limits overflow lines in the footer.
	MaxShortfallsDisplayed = 3

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task title length.
	MaxTitleLength = 100

	// MaxNoteLength is the maximum session note length.
	MaxNoteLength = 200
)
