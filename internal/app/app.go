package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rowjay/hour-window/internal/config"
	"github.com/rowjay/hour-window/internal/window"
)

type App struct {
	Cfg *config.Config
	Log zerolog.Logger
}

func New(cfg *config.Config, log zerolog.Logger) *App {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &App{Cfg: cfg, Log: log}
}

type NamedWindow struct {
	Name  string
	Range window.Range
}

type Membership struct {
	Hour   int
	Member bool
}

// Check validates the inputs and reports membership. Unlike window.Contains
// it returns invalid hours as an error.
func (a *App) Check(target, start, end int) (bool, error) {
	if err := window.CheckHour("target", target); err != nil {
		return false, err
	}
	r := window.Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return false, err
	}
	ok := window.Contains(target, start, end)
	a.Log.Debug().Int("target", target).Str("window", r.String()).Bool("member", ok).Msg("evaluated window")
	return ok, nil
}

// CheckNamed evaluates target against a configured window.
func (a *App) CheckNamed(name string, target int) (bool, error) {
	r, err := a.Window(name)
	if err != nil {
		return false, err
	}
	return a.Check(target, r.Start, r.End)
}

func (a *App) Window(name string) (window.Range, error) {
	// viper stores map keys lower-cased.
	r, ok := a.Cfg.Windows[strings.ToLower(name)]
	if !ok {
		return window.Range{}, fmt.Errorf("unknown window: %s", name)
	}
	return r, nil
}

// Windows returns configured windows sorted by name.
func (a *App) Windows() []NamedWindow {
	out := make([]NamedWindow, 0, len(a.Cfg.Windows))
	for name, r := range a.Cfg.Windows {
		out = append(out, NamedWindow{Name: name, Range: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Table reports membership for every hour of the day.
func (a *App) Table(r window.Range) ([]Membership, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	rows := make([]Membership, 0, window.HoursPerDay)
	for h := window.MinHour; h <= window.MaxHour; h++ {
		rows = append(rows, Membership{Hour: h, Member: r.Contains(h)})
	}
	return rows, nil
}

// Verify evaluates every valid (target, start, end) triple and checks the
// boundary rules. It returns the number of triples evaluated.
func (a *App) Verify(ctx context.Context) (int, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	counts := make([]int, window.HoursPerDay)

	for start := window.MinHour; start <= window.MaxHour; start++ {
		eg.Go(func() error {
			for end := window.MinHour; end <= window.MaxHour; end++ {
				select {
				case <-egCtx.Done():
					return egCtx.Err()
				default:
				}
				for target := window.MinHour; target <= window.MaxHour; target++ {
					if err := checkTriple(target, start, end); err != nil {
						return err
					}
					counts[start]++
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	a.Log.Info().Int("evaluated", total).Msg("verification completed")
	return total, nil
}

func checkTriple(target, start, end int) error {
	got := window.Contains(target, start, end)
	var expect bool
	switch {
	case start == end:
		expect = true
	case start < end:
		expect = target >= start && target < end
	default:
		expect = target >= start || target < end
	}
	if got != expect {
		return fmt.Errorf("contains(%d, %d, %d) = %v, expected %v", target, start, end, got, expect)
	}
	if target == start && !got {
		return fmt.Errorf("start hour %d excluded from [%d, %d)", target, start, end)
	}
	if target == end && start != end && got {
		return fmt.Errorf("end hour %d included in [%d, %d)", target, start, end)
	}
	return nil
}
