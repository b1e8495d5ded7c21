package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "planner",
	Short:   "Extract tasks from email text and pack them into a daily schedule",
	Long:    `Planner scans email subject and body text for actionable lines, estimates and prioritizes them, and packs confirmed tasks into weekday work blocks.`,
	Version: "1.0.0",
}

var timezone string

func init() {
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Asia/Tokyo", "IANA timezone for date handling")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(planCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
