package window

import (
	"errors"
	"fmt"
)

const (
	MinHour     = 0
	MaxHour     = 23
	HoursPerDay = 24
)

// InvalidHourError reports an hour value outside 0-23.
type InvalidHourError struct {
	Name  string
	Value int
}

func (e *InvalidHourError) Error() string {
	return fmt.Sprintf("hour out of range: %s=%d (must be between %d and %d)", e.Name, e.Value, MinHour, MaxHour)
}

// IsInvalidHour reports whether err wraps an *InvalidHourError.
func IsInvalidHour(err error) bool {
	var target *InvalidHourError
	return errors.As(err, &target)
}

// CheckHour returns an *InvalidHourError when v is not a valid hour.
func CheckHour(name string, v int) error {
	if v < MinHour || v > MaxHour {
		return &InvalidHourError{Name: name, Value: v}
	}
	return nil
}

// Contains reports whether target falls in the half-open window [start, end).
// A window with start > end wraps past midnight; start == end covers the whole day.
// It panics with *InvalidHourError if any argument is outside 0-23.
func Contains(target, start, end int) bool {
	mustHour("target", target)
	mustHour("start", start)
	mustHour("end", end)

	switch {
	case start == end:
		return true
	case start < end:
		return target >= start && target < end
	default:
		return target < end || target >= start
	}
}

func mustHour(name string, v int) {
	if err := CheckHour(name, v); err != nil {
		panic(err)
	}
}
