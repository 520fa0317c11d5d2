// Package config provides layout constants, the immutable panel parameters and user settings.
package config

import "time"

// =============================================================================
// Layout Bounds
// =============================================================================

const (
	// VisibilityMargin is how many pixels of a top-level panel must stay on screen
	VisibilityMargin = 20

	// MaxSizeIterations bounds the ratio fixed-point iteration of a size update
	MaxSizeIterations = 8

	// SizeSlack is the width slack below the authorized width that stops the ratio from growing back
	SizeSlack = 5

	// DefaultMaxIconHeight is used when a panel has no non-separator icon
	DefaultMaxIconHeight = 10

	// EnvelopeMinInit and EnvelopeMaxInit seed the per-icon envelope before a sweep
	EnvelopeMinInit = 1e4
	EnvelopeMaxInit = -1e4
)

// =============================================================================
// Magnification
// =============================================================================

const (
	// MagnitudeSteps is the number of steps between a flat panel and full magnification
	MagnitudeSteps = 1000

	// UnfoldStart is the folding factor a sub-panel starts from when it unfolds
	UnfoldStart = 0.99

	// AvoidingMouseAlpha is the opacity of an icon making room for a drop
	AvoidingMouseAlpha = 0.75
)

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// MinLeaveDelay is the floor of the pointer-leave debounce
	MinLeaveDelay = 330 * time.Millisecond

	// FrameInterval is the delay between two animation frames
	FrameInterval = 16 * time.Millisecond

	// DefaultGrowDuration is how long a panel takes to reach full magnification
	DefaultGrowDuration = 200 * time.Millisecond

	// DefaultShrinkDuration is how long a panel takes to go back to rest
	DefaultShrinkDuration = 300 * time.Millisecond

	// DefaultUnfoldDuration is how long a sub-panel takes to unfold
	DefaultUnfoldDuration = 250 * time.Millisecond

	// InsertRemoveDuration is the length of the insertion and removal animations
	InsertRemoveDuration = 400 * time.Millisecond
)

// =============================================================================
// Logging
// =============================================================================

const (
	// MaxLogMessages bounds the in-memory log ring
	MaxLogMessages = 500

	// LogTimeFormat is the timestamp layout of the structured logger
	LogTimeFormat = "15:04:05.00"
)
