package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mikepurvis/advent-of-code/internal/logio"
	"github.com/mikepurvis/advent-of-code/internal/puzzle"
)

// app is the state shared by the commands of one invocation.
type app struct {
	log     *logio.Logger
	cal     Calendar
	cfgFile string
	cfg     *Config
}

func newRootCmd(log *logio.Logger, cal Calendar) *cobra.Command {
	a := &app{log: log, cal: cal}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code puzzles",
		Long: `aoc solves the puzzles of each registered day against its input file and
prints the answers.

Input paths come from a template in which {year} and {day} are replaced,
e.g. --input 'inputs/{year}/day{day}.txt'.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := LoadConfig(a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			if cfg.Trace && cfg.File != "" {
				a.log.Printf("TRACE", "using config file %s", cfg.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./"+DefaultConfigFile+" if present)")
	flags.String("input", DefaultInputPath, "input file path template")
	flags.Bool("trace", false, "enable trace logging")
	flags.Duration("timeout", 0, "time limit per day, 0 for none")
	flags.StringP("format", "o", string(FormatPlain), "output format (plain|table)")
	flags.IntP("jobs", "j", 0, "days to run concurrently (default: GOMAXPROCS)")
	_ = root.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(FormatPlain), string(FormatTable)}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(a.newRunCmd(), a.newAllCmd(), a.newListCmd())
	return root
}

func (a *app) runner(opts ...RunnerOption) *Runner {
	opts = append(a.cfg.RunnerOptions(a.log.Leveledf("TRACE")), opts...)
	return New(opts...)
}

func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run YEAR DAY",
		Short: "Solve one day and print its answers",
		Example: `  aoc run 2020 19
  aoc run 2022/5 --input day5.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := puzzle.ParseKey(args...)
			if err != nil {
				return err
			}
			day, ok := a.cal.Lookup(key)
			if !ok {
				return fmt.Errorf("no solution for %v", key)
			}
			ctx, cancel := a.withTimeout(cmd.Context())
			defer cancel()
			_, err = a.runner(WithOutput(cmd.OutOrStdout())).Run(ctx, day)
			return err
		},
	}
}

func (a *app) newAllCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has an input file and summarize the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			days := a.cal
			if year != 0 {
				if days = a.cal.Year(year); len(days) == 0 {
					return fmt.Errorf("no solutions for %d", year)
				}
			}
			if len(days) > 1 && !strings.Contains(a.cfg.Input, "{day}") {
				return fmt.Errorf("input template %q has no {day} placeholder", a.cfg.Input)
			}

			results, err := a.runAll(cmd, days)
			if err != nil {
				return err
			}
			if err := writeResults(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			for _, res := range results {
				if res.Status() == statusFailed {
					a.log.ErrorIf(res.Err)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "only run days from this year")
	return cmd
}

// runAll runs days concurrently, at most cfg.Jobs at a time. Day failures
// are recorded in each Result; only cancellation aborts the whole run.
func (a *app) runAll(cmd *cobra.Command, days Calendar) ([]Result, error) {
	r := a.runner()
	results := make([]Result, len(days))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Jobs)
	for i, day := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dayCtx, cancel := a.withTimeout(ctx)
			defer cancel()
			results[i], _ = r.Run(dayCtx, day)
			return nil
		})
	}
	return results, g.Wait()
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [YEAR]",
		Short: "List the solved days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := a.cal
			if len(args) > 0 {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q", args[0])
				}
				days = a.cal.Year(year)
			}
			return writeCalendar(cmd.OutOrStdout(), days, a.runner())
		},
	}
}
