package usecase

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"mail-task-planner/internal/extract"
	"mail-task-planner/internal/model"
)

// Extract scans subject/body text and returns deduplicated candidate tasks in
// discovery order.
func (uc *implUseCase) Extract(ctx context.Context, input extract.ExtractInput) (extract.ExtractOutput, error) {
	key := uc.cacheKey(input)
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(key); ok {
			return extract.ExtractOutput{Candidates: cached, Count: len(cached)}, nil
		}
	}

	candidates := Dedupe(uc.extractCandidates(input.Subject, input.Body))

	uc.l.Debugf(ctx, "extract: subject_len=%d body_len=%d candidates=%d",
		len(input.Subject), len(input.Body), len(candidates))

	if uc.cache != nil {
		uc.cache.Add(key, candidates)
	}

	return extract.ExtractOutput{Candidates: candidates, Count: len(candidates)}, nil
}

// cacheKey includes the reference date because year-defaulting of deadlines
// depends on it.
func (uc *implUseCase) cacheKey(input extract.ExtractInput) string {
	return input.Subject + "\x00" + input.Body + "\x00" + uc.normalizer.Now().Format("2006-01-02")
}

// extractCandidates runs the raw extraction pass. Output may contain
// duplicates; callers dedupe.
func (uc *implUseCase) extractCandidates(subject, body string) []model.CandidateTask {
	fullText := subject + "\n" + body
	globalDeadline := uc.findDeadline(fullText)

	var candidates []model.CandidateTask

	// A plain subject is itself a task candidate. Label-prefixed subjects
	// ("TODO: ...") are left to the line cascade below.
	trimmedSubject := strings.TrimSpace(subject)
	if trimmedSubject != "" && !subjectLabelRe.MatchString(trimmedSubject) {
		candidates = append(candidates, model.CandidateTask{
			Text:             trimmedSubject,
			Priority:         model.PriorityMedium,
			EstimatedHours:   0,
			Deadline:         globalDeadline,
			SourceLineNumber: 0,
		})
	}

	for i, rawLine := range strings.Split(fullText, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		lineNumber := i + 1

		priority := ClassifyPriority(line)
		hours := findDuration(line)

		// Per-line deadline always takes precedence over the global one.
		deadline := globalDeadline
		if lineDeadline := uc.findDeadline(line); lineDeadline != "" {
			deadline = lineDeadline
		}

		emit := func(text string, minRunes int) {
			text = strings.TrimSpace(text)
			if utf8.RuneCountInString(text) <= minRunes {
				return
			}
			candidates = append(candidates, model.CandidateTask{
				Text:             text,
				Priority:         priority,
				EstimatedHours:   hours,
				Deadline:         deadline,
				SourceLineNumber: lineNumber,
			})
		}

		// 1. Keyword-labeled patterns: only the first match emits.
		for _, re := range keywordPatterns {
			if m := re.FindStringSubmatch(line); m != nil {
				emit(m[1], 2)
				break
			}
		}

		// 2. Bullet markers, independent of the keyword cascade.
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			emit(m[1], 3)
		}

		// 3. Numbered markers, independent of both.
		if m := numberedRe.FindStringSubmatch(line); m != nil {
			emit(m[1], 3)
		}
	}

	return candidates
}

// findDeadline returns the normalized date of the first deadline pattern that
// matches, or empty when none do.
func (uc *implUseCase) findDeadline(text string) string {
	year := uc.normalizer.Now().Year()
	for _, p := range deadlinePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return uc.normalizer.Normalize(p.raw(m, year))
		}
	}
	return ""
}

// findDuration returns the first duration figure on the line, 0 when none.
func findDuration(line string) float64 {
	for _, re := range durationPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			hours, err := strconv.ParseFloat(m[1], 64)
			if err != nil || hours < 0 {
				return 0
			}
			return hours
		}
	}
	return 0
}
