package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/planday/app"
	"github.com/kilianp07/planday/config"
	"github.com/kilianp07/planday/core/model"
	"github.com/kilianp07/planday/core/store"
)

var (
	taskTitle    string
	taskMinutes  int
	taskImpact   float64
	taskDeadline string
	taskNotes    string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage the task list",
}

var tasksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			t := model.Task{
				Title:    taskTitle,
				Minutes:  taskMinutes,
				Impact:   taskImpact,
				Deadline: taskDeadline,
				Notes:    taskNotes,
			}
			if err := t.Validate(); err != nil {
				return err
			}
			stored, err := repo.Add(context.Background(), t)
			if err != nil {
				return err
			}
			fmt.Printf("added task %d: %q\n", stored.ID, stored.Title)
			return nil
		})
	},
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			tasks, err := repo.List(context.Background())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tMIN\tIMPACT\tDEADLINE\tNOTES")
			for _, t := range tasks {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%.1f\t%s\t%s\n",
					t.ID, t.Title, t.Minutes, t.Impact, t.Deadline, t.Notes)
			}
			return tw.Flush()
		})
	},
}

var tasksRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}
		return withRepo(func(repo store.Repository) error {
			removed, err := repo.Remove(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("removed %d task(s)\n", removed)
			return nil
		})
	},
}

func init() {
	tasksAddCmd.Flags().StringVar(&taskTitle, "title", "", "task title (required)")
	tasksAddCmd.Flags().IntVar(&taskMinutes, "minutes", 0, "estimated duration in minutes (required)")
	tasksAddCmd.Flags().Float64Var(&taskImpact, "impact", 0, "importance weight (required)")
	tasksAddCmd.Flags().StringVar(&taskDeadline, "deadline", "", "deadline YYYY-MM-DD")
	tasksAddCmd.Flags().StringVar(&taskNotes, "notes", "", "free-form notes")
	tasksCmd.AddCommand(tasksAddCmd, tasksListCmd, tasksRemoveCmd)
	rootCmd.AddCommand(tasksCmd)
}

func withRepo(fn func(store.Repository) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	repo, err := app.NewRepository(cfg.Store, model.RealClock{})
	if err != nil {
		return fmt.Errorf("task store: %w", err)
	}
	defer func() { _ = repo.Close() }()
	return fn(repo)
}
