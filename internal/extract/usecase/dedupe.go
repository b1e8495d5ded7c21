package usecase

import (
	"strings"
	"unicode/utf8"

	"mail-task-planner/internal/model"
)

// Dedupe removes duplicate candidates in a single order-preserving pass.
// The key is the trimmed, lower-cased text; the first occurrence of each key
// is kept. Candidates whose key is 2 runes or shorter are dropped entirely.
func Dedupe(candidates []model.CandidateTask) []model.CandidateTask {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]model.CandidateTask, 0, len(candidates))

	for _, c := range candidates {
		key := strings.ToLower(strings.TrimSpace(c.Text))
		if utf8.RuneCountInString(key) <= 2 {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
