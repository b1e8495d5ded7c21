package dateparse_test

import (
	"testing"
	"time"

	"mail-task-planner/pkg/dateparse"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestNormalizer(t *testing.T) *dateparse.Normalizer {
	t.Helper()
	n, err := dateparse.NewWithClock("UTC", fixedClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("unexpected error creating normalizer: %v", err)
	}
	return n
}

func TestNew(t *testing.T) {
	if _, err := dateparse.New("Asia/Tokyo"); err != nil {
		t.Fatalf("unexpected error for valid timezone: %v", err)
	}
	if _, err := dateparse.New("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "canonical passthrough", raw: "2025-03-07", want: "2025-03-07"},
		{name: "single digit parts", raw: "2025-3-7", want: "2025-03-07"},
		{name: "slash separators", raw: "2025/3/7", want: "2025-03-07"},
		{name: "kanji calendar form", raw: "2025年3月7日", want: "2025-03-07"},
		{name: "long month name", raw: "March 7, 2025", want: "2025-03-07"},
		{name: "surrounding whitespace", raw: "  2025-03-07  ", want: "2025-03-07"},
		{name: "garbage", raw: "not a date", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	n := newTestNormalizer(t)

	for _, raw := range []string{"2025-03-07", "2025/12/1", "2025年1月5日", "junk", ""} {
		once := n.Normalize(raw)
		twice := n.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first=%q second=%q", raw, once, twice)
		}
	}
}

func TestFormatForDisplay(t *testing.T) {
	n := newTestNormalizer(t)

	if got := n.FormatForDisplay("2025-03-07"); got != "3/7" {
		t.Errorf("FormatForDisplay = %q, want %q", got, "3/7")
	}
	if got := n.FormatForDisplay("2025-12-25"); got != "12/25" {
		t.Errorf("FormatForDisplay = %q, want %q", got, "12/25")
	}
	if got := n.FormatForDisplay("bogus"); got != "" {
		t.Errorf("FormatForDisplay(bogus) = %q, want empty", got)
	}
}

func TestParseFromDisplay(t *testing.T) {
	n := newTestNormalizer(t)

	got, err := n.ParseFromDisplay("3/7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-03-07" {
		t.Errorf("ParseFromDisplay(3/7) = %q, want 2025-03-07", got)
	}

	if _, err := n.ParseFromDisplay("3-7"); err == nil {
		t.Errorf("expected error for malformed display date")
	}
	if _, err := n.ParseFromDisplay("13/45"); err == nil {
		t.Errorf("expected error for impossible display date")
	}
}

func TestParseFromDisplayRoundTrip(t *testing.T) {
	n := newTestNormalizer(t)

	display := n.FormatForDisplay("2025-08-09")
	back, err := n.ParseFromDisplay(display)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != "2025-08-09" {
		t.Errorf("round trip = %q, want 2025-08-09", back)
	}
}
