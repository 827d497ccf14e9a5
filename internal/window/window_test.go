package window

import (
	"errors"
	"strings"
	"testing"
)

func TestContainsScenarios(t *testing.T) {
	cases := []struct {
		name   string
		target int
		start  int
		end    int
		expect bool
	}{
		{"same day inside", 10, 9, 17, true},
		{"same day outside", 8, 9, 17, false},
		{"midnight inside", 23, 22, 5, true},
		{"midnight outside", 6, 22, 5, false},
		{"target at start", 9, 9, 17, true},
		{"target at end", 17, 9, 17, false},
		{"whole day at zero", 0, 5, 5, true},
		{"whole day at 23", 23, 5, 5, true},
	}
	for _, tc := range cases {
		if got := Contains(tc.target, tc.start, tc.end); got != tc.expect {
			t.Fatalf("%s: Contains(%d, %d, %d) = %v, expected %v", tc.name, tc.target, tc.start, tc.end, got, tc.expect)
		}
	}
}

func TestContainsAllValidInputs(t *testing.T) {
	for start := MinHour; start <= MaxHour; start++ {
		for end := MinHour; end <= MaxHour; end++ {
			for target := MinHour; target <= MaxHour; target++ {
				var expect bool
				switch {
				case start == end:
					expect = true
				case start < end:
					expect = target >= start && target < end
				default:
					expect = target >= start || target < end
				}
				if got := Contains(target, start, end); got != expect {
					t.Fatalf("Contains(%d, %d, %d) = %v, expected %v", target, start, end, got, expect)
				}
			}
		}
	}
}

func TestContainsBoundaries(t *testing.T) {
	for start := MinHour; start <= MaxHour; start++ {
		for end := MinHour; end <= MaxHour; end++ {
			if !Contains(start, start, end) {
				t.Fatalf("start hour %d not included in [%d, %d)", start, start, end)
			}
			got := Contains(end, start, end)
			if start == end && !got {
				t.Fatalf("end hour %d not included in whole-day window", end)
			}
			if start != end && got {
				t.Fatalf("end hour %d included in [%d, %d)", end, start, end)
			}
		}
	}
}

func TestContainsPanicsOnInvalidHour(t *testing.T) {
	cases := []struct {
		name  string
		args  [3]int
		param string
		value int
	}{
		{"target high", [3]int{24, 9, 17}, "target", 24},
		{"target negative", [3]int{-1, 9, 17}, "target", -1},
		{"start high", [3]int{10, 24, 17}, "start", 24},
		{"start negative", [3]int{10, -3, 17}, "start", -3},
		{"end high", [3]int{10, 9, 30}, "end", 30},
		{"end negative", [3]int{10, 9, -1}, "end", -1},
	}
	for _, tc := range cases {
		err := recoverPanic(func() { Contains(tc.args[0], tc.args[1], tc.args[2]) })
		if err == nil {
			t.Fatalf("%s: expected panic", tc.name)
		}
		var invalid *InvalidHourError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: unexpected panic value: %v", tc.name, err)
		}
		if invalid.Name != tc.param || invalid.Value != tc.value {
			t.Fatalf("%s: unexpected error fields: %+v", tc.name, invalid)
		}
		if !strings.Contains(err.Error(), "hour out of range") {
			t.Fatalf("%s: unexpected message: %s", tc.name, err)
		}
	}
}

func TestCheckHour(t *testing.T) {
	for _, v := range []int{MinHour, 12, MaxHour} {
		if err := CheckHour("target", v); err != nil {
			t.Fatalf("unexpected error for %d: %v", v, err)
		}
	}
	for _, v := range []int{-1, HoursPerDay, 100} {
		err := CheckHour("target", v)
		if !IsInvalidHour(err) {
			t.Fatalf("expected invalid hour error for %d, got %v", v, err)
		}
	}
}

func recoverPanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return nil
}
