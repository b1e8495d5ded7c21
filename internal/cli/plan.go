package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/schedule"
	scheduleUC "mail-task-planner/internal/schedule/usecase"
	"mail-task-planner/pkg/dateparse"
)

var (
	planHours float64
	planStart string
	planJSON  bool
)

// planTask is the JSON shape accepted by the plan command.
type planTask struct {
	Text           string  `json:"text"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
	Deadline       string  `json:"deadline"`
}

var planCmd = &cobra.Command{
	Use:   "plan <tasks.json>",
	Short: "Build a daily schedule from a task list",
	Long:  `Plan reads a JSON array of tasks (text, priority, estimated_hours, deadline) and packs them into weekday work blocks by priority and deadline.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var raw []planTask
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid task file: %w", err)
		}

		normalizer, err := dateparse.New(timezone)
		if err != nil {
			return err
		}

		startDate, err := resolveStartDate(normalizer, planStart)
		if err != nil {
			return err
		}

		tasks := make([]model.Task, len(raw))
		for i, t := range raw {
			priority := model.Priority(t.Priority)
			if !priority.Valid() {
				priority = model.PriorityMedium
			}
			tasks[i] = model.Task{
				ID:             fmt.Sprintf("task-%d", i+1),
				Text:           t.Text,
				Priority:       priority,
				EstimatedHours: t.EstimatedHours,
				Deadline:       normalizer.Normalize(t.Deadline),
			}
		}

		uc := scheduleUC.New(quietLogger(), normalizer, nil, timezone, planHours)
		out, err := uc.Build(context.Background(), schedule.BuildInput{
			Tasks:           tasks,
			WorkHoursPerDay: planHours,
			StartDate:       startDate,
		})
		if err != nil {
			return fmt.Errorf("build schedule: %w", err)
		}

		if planJSON {
			return json.NewEncoder(os.Stdout).Encode(out)
		}
		fmt.Print(renderSchedule(normalizer, out))
		return nil
	},
}

func init() {
	planCmd.Flags().Float64Var(&planHours, "hours", scheduleUC.DefaultWorkHoursPerDay, "Work hours per day")
	planCmd.Flags().StringVar(&planStart, "start", "", "Start date (YYYY-MM-DD, default: today)")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the schedule as JSON")
}

func resolveStartDate(normalizer *dateparse.Normalizer, raw string) (time.Time, error) {
	if raw == "" {
		now := normalizer.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	canonical := normalizer.Normalize(raw)
	if canonical == "" {
		return time.Time{}, fmt.Errorf("invalid start date %q", raw)
	}
	return time.ParseInLocation(dateparse.Canonical, canonical, normalizer.Now().Location())
}
