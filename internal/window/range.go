package window

import "fmt"

// Range is an hour window. Start is included, End is excluded.
type Range struct {
	Start int `json:"start" mapstructure:"start"`
	End   int `json:"end" mapstructure:"end"`
}

func (r Range) Validate() error {
	if err := CheckHour("start", r.Start); err != nil {
		return err
	}
	return CheckHour("end", r.End)
}

// Contains panics like the package-level Contains on invalid hours.
func (r Range) Contains(target int) bool {
	return Contains(target, r.Start, r.End)
}

func (r Range) IsWholeDay() bool { return r.Start == r.End }

func (r Range) Wraps() bool { return r.Start > r.End }

// Len returns the number of member hours.
// It panics with *InvalidHourError if Start or End is outside 0-23.
func (r Range) Len() int {
	mustHour("start", r.Start)
	mustHour("end", r.End)
	if r.IsWholeDay() {
		return HoursPerDay
	}
	return (r.End - r.Start + HoursPerDay) % HoursPerDay
}

// Hours lists member hours in window order, beginning at Start.
func (r Range) Hours() []int {
	n := r.Len()
	hours := make([]int, 0, n)
	for i := 0; i < n; i++ {
		hours = append(hours, (r.Start+i)%HoursPerDay)
	}
	return hours
}

func (r Range) String() string {
	return fmt.Sprintf("[%02d, %02d)", r.Start, r.End)
}
