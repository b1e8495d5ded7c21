package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mail-task-planner/internal/model"
	"mail-task-planner/internal/schedule"
	"mail-task-planner/pkg/dateparse"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	totalStyle  = lipgloss.NewStyle().Bold(true)

	priorityStyles = map[model.Priority]lipgloss.Style{
		model.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		model.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		model.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func renderPriority(p model.Priority) string {
	if style, ok := priorityStyles[p]; ok {
		return style.Render(string(p))
	}
	return string(p)
}

func renderCandidates(candidates []model.CandidateTask) string {
	if len(candidates) == 0 {
		return dimStyle.Render("No task candidates found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Found %d task candidate(s)", len(candidates))))
	b.WriteString("\n\n")
	for i, c := range candidates {
		b.WriteString(fmt.Sprintf("%2d. %s  [%s]", i+1, c.Text, renderPriority(c.Priority)))
		var details []string
		if c.EstimatedHours > 0 {
			details = append(details, fmt.Sprintf("%.1fh", c.EstimatedHours))
		}
		if c.Deadline != "" {
			details = append(details, "due "+c.Deadline)
		}
		if c.SourceLineNumber > 0 {
			details = append(details, fmt.Sprintf("line %d", c.SourceLineNumber))
		}
		if len(details) > 0 {
			b.WriteString("  " + dimStyle.Render(strings.Join(details, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderSchedule(normalizer *dateparse.Normalizer, out schedule.BuildOutput) string {
	if len(out.Days) == 0 {
		return dimStyle.Render("Nothing to schedule.") + "\n"
	}

	var b strings.Builder
	for _, day := range out.Days {
		date := day.Date.Format(dateparse.Canonical)
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s)", date, day.Date.Weekday().String()[:3])))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %.1fh", day.TotalHours)))
		b.WriteString("\n")
		for _, st := range day.Tasks {
			b.WriteString(fmt.Sprintf("  %s  %s  [%s]", st.StartTime, st.Task.Text, renderPriority(st.Task.Priority)))
			if st.Task.Deadline != "" {
				b.WriteString(dimStyle.Render("  due " + normalizer.FormatForDisplay(st.Task.Deadline)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total: %.1fh over %d day(s), avg %.1fh/day",
		out.TotalHours, out.TotalDays, out.AverageHours)))
	b.WriteString("\n")
	return b.String()
}
