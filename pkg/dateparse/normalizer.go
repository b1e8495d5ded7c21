package dateparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Canonical is the canonical calendar date layout used across the service.
const Canonical = "2006-01-02"

var canonicalRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// displayRe matches the compact "M/D" display form.
var displayRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)

// parseLayouts are tried in order when normalizing a non-canonical date.
var parseLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2006年1月2日",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Normalizer canonicalizes and formats calendar dates.
// It holds a timezone and a clock so that current-year defaulting is
// deterministic under test.
type Normalizer struct {
	location *time.Location
	clock    func() time.Time
}

// New creates a Normalizer for the given IANA timezone string, e.g. "Asia/Tokyo".
func New(timezone string) (*Normalizer, error) {
	return NewWithClock(timezone, time.Now)
}

// NewWithClock creates a Normalizer with an injected clock. Tests use this to
// pin the current year.
func NewWithClock(timezone string, clock func() time.Time) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if clock == nil {
		clock = time.Now
	}
	return &Normalizer{location: loc, clock: clock}, nil
}

// Now returns the current time in the normalizer's timezone.
func (n *Normalizer) Now() time.Time {
	return n.clock().In(n.location)
}

// Normalize converts raw into the canonical YYYY-MM-DD form.
// Input already in canonical form is returned unchanged. Unparseable input
// yields the empty string, never an error.
func (n *Normalizer) Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if canonicalRe.MatchString(raw) {
		return raw
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, raw, n.location); err == nil {
			return t.Format(Canonical)
		}
	}
	return ""
}

// FormatForDisplay renders a canonical date as "M/D" without leading zeros,
// year omitted. Unparseable input yields the empty string.
func (n *Normalizer) FormatForDisplay(canonical string) string {
	t, err := time.ParseInLocation(Canonical, strings.TrimSpace(canonical), n.location)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// ParseFromDisplay converts an "M/D" display string back to canonical form,
// assuming the current calendar year.
func (n *Normalizer) ParseFromDisplay(display string) (string, error) {
	m := displayRe.FindStringSubmatch(strings.TrimSpace(display))
	if m == nil {
		return "", fmt.Errorf("invalid display date %q", display)
	}

	candidate := fmt.Sprintf("%d-%s-%s", n.Now().Year(), m[1], m[2])
	t, err := time.ParseInLocation("2006-1-2", candidate, n.location)
	if err != nil {
		return "", fmt.Errorf("invalid display date %q: %w", display, err)
	}
	return t.Format(Canonical), nil
}
