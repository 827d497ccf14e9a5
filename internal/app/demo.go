package app

import "github.com/rowjay/hour-window/internal/window"

type Scenario struct {
	Description string
	Target      int
	Start       int
	End         int
	Expected    bool
	Result      bool
}

var scenarios = []Scenario{
	{Description: "target inside window (same day)", Target: 10, Start: 9, End: 17, Expected: true},
	{Description: "target outside window (same day)", Target: 8, Start: 9, End: 17, Expected: false},
	{Description: "target inside window (spans midnight)", Target: 23, Start: 22, End: 5, Expected: true},
	{Description: "target outside window (spans midnight)", Target: 6, Start: 22, End: 5, Expected: false},
	{Description: "target equals start", Target: 9, Start: 9, End: 17, Expected: true},
	{Description: "target equals end (excluded)", Target: 17, Start: 9, End: 17, Expected: false},
	{Description: "start equals end (whole day)", Target: 0, Start: 5, End: 5, Expected: true},
	{Description: "start equals end (whole day), other target", Target: 23, Start: 5, End: 5, Expected: true},
}

// Demo evaluates the sample scenarios.
func (a *App) Demo() []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		s.Result = window.Contains(s.Target, s.Start, s.End)
		out[i] = s
	}
	return out
}
