package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rowjay/hour-window/internal/app"
	"github.com/rowjay/hour-window/internal/config"
	"github.com/rowjay/hour-window/internal/logging"
	"github.com/rowjay/hour-window/internal/util"
	"github.com/rowjay/hour-window/internal/version"
	"github.com/rowjay/hour-window/internal/window"
)

type rootFlags struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

type windowFlags struct {
	Name  string
	Start int
	End   int
}

func (w *windowFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&w.Name, "window", "", "Named window from config")
	cmd.Flags().IntVar(&w.Start, "start", 0, "Window start hour (0-23, included)")
	cmd.Flags().IntVar(&w.End, "end", 0, "Window end hour (0-23, excluded; equal to start means whole day)")
	cmd.MarkFlagsOneRequired("window", "start")
	cmd.MarkFlagsRequiredTogether("start", "end")
	cmd.MarkFlagsMutuallyExclusive("window", "start")
	cmd.MarkFlagsMutuallyExclusive("window", "end")
}

func (w *windowFlags) resolve(a *app.App) (window.Range, error) {
	if w.Name != "" {
		return a.Window(w.Name)
	}
	r := window.Range{Start: w.Start, End: w.End}
	if err := r.Validate(); err != nil {
		return window.Range{}, err
	}
	return r, nil
}

func main() {
	root := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:          "hw",
		Short:        "Check whether an hour falls within a daily window",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&root.ConfigPath, "config", "", "Path to config file (yaml/toml/json)")
	rootCmd.PersistentFlags().StringVar(&root.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&root.LogFormat, "log-format", "", "Log format (json, console)")

	rootCmd.AddCommand(newCheckCmd(root))
	rootCmd.AddCommand(newNowCmd(root))
	rootCmd.AddCommand(newTableCmd(root))
	rootCmd.AddCommand(newDemoCmd(root))
	rootCmd.AddCommand(newWindowsCmd(root))
	rootCmd.AddCommand(newVerifyCmd(root))
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	var target int
	win := &windowFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether --target is within the window",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root)
			if err != nil {
				return err
			}
			var ok bool
			if win.Name != "" {
				ok, err = a.CheckNamed(win.Name, target)
			} else {
				ok, err = a.Check(target, win.Start, win.End)
			}
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "Hour to test (0-23)")
	_ = cmd.MarkFlagRequired("target")
	win.register(cmd)
	return cmd
}

func newNowCmd(root *rootFlags) *cobra.Command {
	win := &windowFlags{}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Report whether the current local hour is within the window",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root)
			if err != nil {
				return err
			}
			r, err := win.resolve(a)
			if err != nil {
				return err
			}
			now := time.Now()
			ok := util.InRange(now, r)
			a.Log.Debug().Int("hour", now.Hour()).Str("window", r.String()).Bool("member", ok).Msg("evaluated current hour")
			fmt.Println(ok)
			return nil
		},
	}
	win.register(cmd)
	return cmd
}

func newTableCmd(root *rootFlags) *cobra.Command {
	win := &windowFlags{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print membership for every hour of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root)
			if err != nil {
				return err
			}
			r, err := win.resolve(a)
			if err != nil {
				return err
			}
			rows, err := a.Table(r)
			if err != nil {
				return err
			}
			fmt.Printf("window %s (%d hours)\n", r, r.Len())
			for _, row := range rows {
				fmt.Printf("%02d\t%s\n", row.Hour, formatBool(row.Member))
			}
			return nil
		},
	}
	win.register(cmd)
	return cmd
}

func newDemoCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Evaluate the sample scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root)
			if err != nil {
				return err
			}
			for i, s := range a.Demo() {
				fmt.Printf("scenario %d: %s\n", i+1, s.Description)
				fmt.Printf("  contains(%d, %d, %d) = %s (expected %v)\n", s.Target, s.Start, s.End, formatBool(s.Result), s.Expected)
			}
			return nil
		},
	}
}

func newWindowsCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List configured windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root)
			if err != nil {
				return err
			}
			for _, w := range a.Windows() {
				fmt.Printf("%s\t%s\t%d\n", w.Name, w.Range, w.Range.Len())
			}
			return nil
		},
	}
}

func newVerifyCmd(root *rootFlags) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exhaustively check the boundary rules over all valid hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			n, err := a.Verify(ctx)
			if err != nil {
				color.Red("FAIL: %v", err)
				return err
			}
			color.Green("PASS (%d cases)", n)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Verification timeout")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hw %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}

func newApp(root *rootFlags) (*app.App, error) {
	cfg, err := config.Load(root.ConfigPath)
	if err != nil {
		return nil, err
	}
	if root.LogLevel != "" {
		cfg.Global.LogLevel = root.LogLevel
	}
	if root.LogFormat != "" {
		cfg.Global.LogFormat = root.LogFormat
	}
	logger := logging.Configure(cfg.Global.LogLevel, cfg.Global.LogFormat)
	return app.New(cfg, logger), nil
}

func formatBool(v bool) string {
	if v {
		return color.GreenString("true")
	}
	return color.RedString("false")
}
