package usecase_test

import (
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"mail-task-planner/internal/extract"
	"mail-task-planner/internal/extract/usecase"
	"mail-task-planner/internal/model"
	"mail-task-planner/pkg/dateparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)   {}

func newTestUseCase(t *testing.T) extract.UseCase {
	t.Helper()
	normalizer, err := dateparse.NewWithClock("UTC", func() time.Time {
		return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	})
	if err != nil {
		t.Fatalf("unexpected error creating normalizer: %v", err)
	}
	return usecase.New(&mockLogger{}, normalizer, 16)
}

func mustExtract(t *testing.T, uc extract.UseCase, subject, body string) []model.CandidateTask {
	t.Helper()
	out, err := uc.Extract(context.Background(), extract.ExtractInput{Subject: subject, Body: body})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.Candidates
}

func TestExtract(t *testing.T) {
	uc := newTestUseCase(t)

	t.Run("mixed subject and body", func(t *testing.T) {
		subject := "Fix login bug"
		body := "TODO: 報告書を作成\n- データ整理\n緊急: 至急対応"

		got := mustExtract(t, uc, subject, body)
		if len(got) != 4 {
			t.Fatalf("expected 4 candidates, got %d: %+v", len(got), got)
		}

		want := []struct {
			text     string
			priority model.Priority
		}{
			{"Fix login bug", model.PriorityMedium},
			{"報告書を作成", model.PriorityMedium},
			{"データ整理", model.PriorityMedium},
			{"至急対応", model.PriorityHigh},
		}
		for i, w := range want {
			if got[i].Text != w.text {
				t.Errorf("candidate %d: text = %q, want %q", i, got[i].Text, w.text)
			}
			if got[i].Priority != w.priority {
				t.Errorf("candidate %d (%s): priority = %s, want %s", i, w.text, got[i].Priority, w.priority)
			}
		}
	})

	t.Run("empty input yields empty list", func(t *testing.T) {
		if got := mustExtract(t, uc, "", ""); len(got) != 0 {
			t.Errorf("expected no candidates, got %d", len(got))
		}
		if got := mustExtract(t, uc, "  ", "\n\n  \n"); len(got) != 0 {
			t.Errorf("expected no candidates for blank text, got %d", len(got))
		}
	})

	t.Run("labeled subject is not emitted directly", func(t *testing.T) {
		got := mustExtract(t, uc, "TODO: write the report", "")
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d: %+v", len(got), got)
		}
		if got[0].Text != "write the report" {
			t.Errorf("text = %q, want label-stripped remainder", got[0].Text)
		}
		if got[0].SourceLineNumber != 1 {
			t.Errorf("sourceLineNumber = %d, want 1 (line cascade, not subject)", got[0].SourceLineNumber)
		}
	})

	t.Run("subject candidate shape", func(t *testing.T) {
		got := mustExtract(t, uc, "Prepare slides", "期限：2025年3月7日")
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
		c := got[0]
		if c.SourceLineNumber != 0 || c.EstimatedHours != 0 || c.Priority != model.PriorityMedium {
			t.Errorf("subject candidate = %+v, want line 0, 0h, medium", c)
		}
		if c.Deadline != "2025-03-07" {
			t.Errorf("deadline = %q, want global deadline 2025-03-07", c.Deadline)
		}
	})

	t.Run("line numbers are 1-based over fullText", func(t *testing.T) {
		got := mustExtract(t, uc, "", "\n- first real item\n\n- second item")
		if len(got) != 2 {
			t.Fatalf("expected 2 candidates, got %d", len(got))
		}
		// fullText = "\n" + body, so the bullets sit on lines 3 and 5.
		if got[0].SourceLineNumber != 3 || got[1].SourceLineNumber != 5 {
			t.Errorf("line numbers = %d, %d; want 3, 5", got[0].SourceLineNumber, got[1].SourceLineNumber)
		}
	})

	t.Run("duration patterns", func(t *testing.T) {
		tests := []struct {
			line string
			want float64
		}{
			{"- レビュー対応 2時間", 2},
			{"- write docs 3h", 3},
			{"- migration dry run 1.5hr", 1.5},
			{"- no estimate here", 0},
			{"- 資料作成 2.5時間", 2.5},
		}
		for _, tt := range tests {
			got := mustExtract(t, uc, "", tt.line)
			if len(got) != 1 {
				t.Fatalf("line %q: expected 1 candidate, got %d", tt.line, len(got))
			}
			if got[0].EstimatedHours != tt.want {
				t.Errorf("line %q: hours = %v, want %v", tt.line, got[0].EstimatedHours, tt.want)
			}
		}
	})

	t.Run("per-line deadline overrides global", func(t *testing.T) {
		body := "期限：2025-07-01\n- 全体作業\n- 早い作業 期限：2025-06-20"
		got := mustExtract(t, uc, "", body)
		if len(got) != 2 {
			t.Fatalf("expected 2 candidates, got %d: %+v", len(got), got)
		}
		if got[0].Deadline != "2025-07-01" {
			t.Errorf("global fallback deadline = %q, want 2025-07-01", got[0].Deadline)
		}
		if got[1].Deadline != "2025-06-20" {
			t.Errorf("per-line deadline = %q, want 2025-06-20", got[1].Deadline)
		}
	})

	t.Run("kanji deadline without year defaults to current year", func(t *testing.T) {
		got := mustExtract(t, uc, "Ship release", "期限：3月7日")
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
		if got[0].Deadline != "2025-03-07" {
			t.Errorf("deadline = %q, want 2025-03-07", got[0].Deadline)
		}
	})

	t.Run("numeric deadline without year defaults to current year", func(t *testing.T) {
		got := mustExtract(t, uc, "Ship release", "deadline: 9-30")
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate, got %d", len(got))
		}
		if got[0].Deadline != "2025-09-30" {
			t.Errorf("deadline = %q, want 2025-09-30", got[0].Deadline)
		}
	})

	t.Run("numbered markers", func(t *testing.T) {
		got := mustExtract(t, uc, "", "1. review the design\n2) update changelog")
		if len(got) != 2 {
			t.Fatalf("expected 2 candidates, got %d", len(got))
		}
		if got[0].Text != "review the design" || got[1].Text != "update changelog" {
			t.Errorf("unexpected texts: %q, %q", got[0].Text, got[1].Text)
		}
	})

	t.Run("short bullet text dropped", func(t *testing.T) {
		got := mustExtract(t, uc, "", "- abc\n- abcd")
		if len(got) != 1 {
			t.Fatalf("expected 1 candidate (3-rune bullet dropped), got %d: %+v", len(got), got)
		}
		if got[0].Text != "abcd" {
			t.Errorf("text = %q, want %q", got[0].Text, "abcd")
		}
	})

	t.Run("all candidate texts longer than 2 runes", func(t *testing.T) {
		body := "TODO: ab\n- データ整理\n1. ok\n確認: 進捗まとめ 1時間"
		for _, c := range mustExtract(t, uc, "レビュー依頼", body) {
			if utf8.RuneCountInString(c.Text) <= 2 {
				t.Errorf("candidate %q violates minimum length", c.Text)
			}
		}
	})

	t.Run("repeated calls are deterministic", func(t *testing.T) {
		subject, body := "Weekly report", "TODO: まとめ作成 2時間 期限：6月20日\n- レビュー依頼"
		first := mustExtract(t, uc, subject, body)
		second := mustExtract(t, uc, subject, body)
		if len(first) != len(second) {
			t.Fatalf("candidate counts differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("candidate %d differs across calls: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}
