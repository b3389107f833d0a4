// Package waveform implements the bar-style waveform rendering engine.
// A Renderer turns a resolved configuration and an optional amplitude
// sequence into filled rectangles on a 2D drawing surface, and keeps the
// rendering correct across surface resizes and configuration updates.
package waveform

import "errors"

// Errors reported by the create-time constructors. No operation fails
// after a Renderer has been successfully created.
var (
	// ErrSurfaceNotFound is returned when a selector resolves to nothing.
	ErrSurfaceNotFound = errors.New("surface not found")

	// ErrInvalidSurface is returned when the provided handle is not a
	// drawing-capable surface.
	ErrInvalidSurface = errors.New("invalid surface")

	// ErrContextUnavailable is returned when a 2D drawing context cannot
	// be obtained from the surface.
	ErrContextUnavailable = errors.New("2d context unavailable")

	// ErrInvalidContainer is returned by the auto-create path when the
	// container handle or selector is invalid.
	ErrInvalidContainer = errors.New("invalid container")
)
