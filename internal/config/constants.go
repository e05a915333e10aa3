package config

import "time"

// Application settings.
const (
	AppName          = "sessionplan"
	DBFileName       = "sessionplan.db"
	EnvPrefix        = "SESSIONPLAN_"
	DefaultProject   = "personal"
	DefaultTheme     = "default"
	DBTimeout        = 5 * time.Second
	ReportFilePrefix = "plan"
)

// Planning defaults and limits.
const (
	// DefaultSessionHours is the capacity of a session added without h:.
	DefaultSessionHours = 2.0

	// MaxSessionHours caps a single session's capacity.
	MaxSessionHours = 24.0

	// MaxTaskHours caps a single task estimate.
	MaxTaskHours = 1000.0
)
