package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mail-task-planner/internal/extract"
	extractUC "mail-task-planner/internal/extract/usecase"
	"mail-task-planner/pkg/dateparse"
	"mail-task-planner/pkg/log"
)

var (
	extractSubject string
	extractJSON    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract task candidates from an email body",
	Long:  `Extract scans the given file (or stdin when omitted) for actionable lines and prints the task candidates with priority, estimated hours and deadline.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := readInput(args)
		if err != nil {
			return err
		}

		normalizer, err := dateparse.New(timezone)
		if err != nil {
			return err
		}

		logger := quietLogger()
		uc := extractUC.New(logger, normalizer, 0)

		out, err := uc.Extract(context.Background(), extract.ExtractInput{
			Subject: extractSubject,
			Body:    body,
		})
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}

		if extractJSON {
			return json.NewEncoder(os.Stdout).Encode(out.Candidates)
		}
		fmt.Print(renderCandidates(out.Candidates))
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractSubject, "subject", "", "Email subject line")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Print candidates as JSON")
}

// readInput reads the body text from the file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// quietLogger keeps CLI output free of server-style log lines.
func quietLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "console"})
}
