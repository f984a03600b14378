package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/planday/app"
	"github.com/kilianp07/planday/config"
	"github.com/kilianp07/planday/core/model"
	"github.com/kilianp07/planday/core/plan"
	"github.com/kilianp07/planday/pkg/export"
)

var (
	planHours  float64
	planStart  string
	planSplit  bool
	planWindow int
	planFormat string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a schedule for today and print it",
	RunE:  buildPlan,
}

func init() {
	planCmd.Flags().Float64Var(&planHours, "hours", 0, "daily budget in hours (default from config)")
	planCmd.Flags().StringVar(&planStart, "start", "", "day start time HH:MM (default from config)")
	planCmd.Flags().BoolVar(&planSplit, "split", false, "allow splitting the last task that does not fit")
	planCmd.Flags().IntVar(&planWindow, "window", 0, "urgency window in days (default from config)")
	planCmd.Flags().StringVar(&planFormat, "format", "table", "output format: table, csv or json")
	rootCmd.AddCommand(planCmd)
}

func buildPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	repo, err := app.NewRepository(cfg.Store, model.RealClock{})
	if err != nil {
		return fmt.Errorf("task store: %w", err)
	}
	defer func() { _ = repo.Close() }()

	tasks, err := repo.List(context.Background())
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	planner := plan.New(model.RealClock{}, cfg.Planner)
	opts := planner.DefaultOptions()
	if cmd.Flags().Changed("hours") {
		opts.DailyMinutes = planHours * 60
	}
	if cmd.Flags().Changed("start") {
		opts.Start = planStart
	}
	if cmd.Flags().Changed("split") {
		opts.AllowSplit = planSplit
	}
	if cmd.Flags().Changed("window") {
		opts.UrgencyWindowDays = planWindow
	}

	p, err := planner.BuildDay(tasks, opts)
	if err != nil {
		return err
	}

	switch planFormat {
	case "json":
		return export.WriteJSON(os.Stdout, p.Blocks)
	case "csv":
		return export.WriteCSV(os.Stdout, p.Blocks)
	case "table":
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "START\tEND\tTITLE\tMIN\tIMPACT\tDEADLINE")
		for _, b := range p.Blocks {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.1f\t%s\n",
				b.Start, b.End, b.Title, b.Minutes, b.Impact, b.Deadline)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Printf("%d/%d tasks placed, %.0f of %.0f minutes (%.0f%%)\n",
			p.Stats.TasksPlaced, p.Stats.TasksConsidered,
			p.Stats.ScheduledMinutes, p.Stats.BudgetMinutes, p.Stats.Utilization*100)
		return nil
	default:
		return fmt.Errorf("unknown format %s", planFormat)
	}
}
