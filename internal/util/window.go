package util

import (
	"time"

	"github.com/rowjay/hour-window/internal/window"
)

// InWindow returns true if the hour of now is within [start, end).
// Minutes and seconds are truncated; now is read in its own location.
func InWindow(now time.Time, start, end int) bool {
	return window.Contains(now.Hour(), start, end)
}

// InRange is InWindow for a window.Range.
func InRange(now time.Time, r window.Range) bool {
	return InWindow(now, r.Start, r.End)
}
