package usecase

import (
	"fmt"
	"regexp"

	"mail-task-planner/internal/model"
)

// The pattern cascades below are configuration data, not control flow.
// Order matters everywhere: the first matching entry wins.

// keywordPatterns match label-prefixed lines ("TODO: ...", "タスク：...").
// Each pattern captures the remainder after the label and separator.
var keywordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^to\s*do\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`(?i)^task\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`(?i)^action\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`(?i)^urgent\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^タスク\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^作業\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^やること\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^対応\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^確認\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^準備\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^依頼\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^緊急\s*[:：]\s*(.+)$`),
	regexp.MustCompile(`^至急\s*[:：]\s*(.+)$`),
}

// bulletRe and numberedRe match list-style lines independently of the
// keyword cascade. A single line may contribute a candidate from each.
var (
	bulletRe   = regexp.MustCompile(`^[-*•]\s*(.+)$`)
	numberedRe = regexp.MustCompile(`^\d+[.)]\s*(.+)$`)
)

// subjectLabelRe detects subjects that begin with a "label:" marker and are
// therefore left to the line cascade instead of being emitted directly.
var subjectLabelRe = regexp.MustCompile(`^\S{1,20}[:：]`)

// deadlineLabel is the alternation of deadline label synonyms.
const deadlineLabel = `(期限|締切|締め切り|deadline|due)`

// deadlinePatterns recognize deadline-labeled dates in two notations.
// Year-bearing forms come before year-defaulting forms so "期限：2025年3月7日"
// never half-matches as a month/day pair.
type deadlinePattern struct {
	re  *regexp.Regexp
	raw func(m []string, year int) string // raw date string fed to Normalize
}

var deadlinePatterns = []deadlinePattern{
	{
		re: regexp.MustCompile(`(?i)` + deadlineLabel + `\s*[:：]?\s*(\d{4})年(\d{1,2})月(\d{1,2})日`),
		raw: func(m []string, _ int) string {
			return fmt.Sprintf("%s-%s-%s", m[2], m[3], m[4])
		},
	},
	{
		re: regexp.MustCompile(`(?i)` + deadlineLabel + `\s*[:：]?\s*(\d{1,2})月(\d{1,2})日`),
		raw: func(m []string, year int) string {
			return fmt.Sprintf("%d-%s-%s", year, m[2], m[3])
		},
	},
	{
		re: regexp.MustCompile(`(?i)` + deadlineLabel + `\s*[:：]?\s*(\d{4})[-/](\d{1,2})[-/](\d{1,2})`),
		raw: func(m []string, _ int) string {
			return fmt.Sprintf("%s-%s-%s", m[2], m[3], m[4])
		},
	},
	{
		re: regexp.MustCompile(`(?i)` + deadlineLabel + `\s*[:：]?\s*(\d{1,2})[-/](\d{1,2})`),
		raw: func(m []string, year int) string {
			return fmt.Sprintf("%d-%s-%s", year, m[2], m[3])
		},
	},
}

// durationPatterns extract an estimated-hours figure from a line.
// The first matching pattern wins; fractional values are allowed.
var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*時間`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*hrs?\b`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*h\b`),
}

// priorityTable maps priority levels to keyword lists, checked high → low.
// A line containing both a high and a low keyword always resolves to high.
var priorityTable = []struct {
	level    model.Priority
	keywords []string // stored lower-case; matched as substrings
}{
	{
		level:    model.PriorityHigh,
		keywords: []string{"緊急", "至急", "重要", "最優先", "urgent", "asap", "critical", "important"},
	},
	{
		level:    model.PriorityMedium,
		keywords: []string{"急ぎ", "早め", "なるべく早く", "soon", "normal"},
	},
	{
		level:    model.PriorityLow,
		keywords: []string{"あとで", "後で", "いつか", "余裕", "later", "someday", "low", "minor", "optional"},
	},
}
