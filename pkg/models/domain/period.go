package domain

import (
	"fmt"
	"strings"
	"time"
)

type PeriodKind string

const (
	PeriodInstant  PeriodKind = "instant"
	PeriodDuration PeriodKind = "duration"
)

// Relative tolerance for comparing duration spans. Absorbs month-length and
// leap-year variation (a 90-day quarter vs a 92-day quarter) without
// conflating quarters with years.
const durationSpanTolerance = 0.1

// Period is the time-axis value of a fact: a single point or a start/end
// span. Instants carry the same time in Start and End.
type Period struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time
}

var periodLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parsePeriodPoint(raw string) (time.Time, error) {
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised period date %q", raw)
}

// ParsePeriod decodes a raw period aspect value: "start/end" for durations,
// a single date or datetime for instants.
func ParsePeriod(raw string) (Period, error) {
	if start, end, ok := strings.Cut(raw, "/"); ok {
		s, err := parsePeriodPoint(start)
		if err != nil {
			return Period{}, err
		}
		e, err := parsePeriodPoint(end)
		if err != nil {
			return Period{}, err
		}
		return Period{Kind: PeriodDuration, Start: s, End: e}, nil
	}
	t, err := parsePeriodPoint(raw)
	if err != nil {
		return Period{}, err
	}
	return Period{Kind: PeriodInstant, Start: t, End: t}, nil
}

// Span is the elapsed time the period covers. Zero for instants.
func (p Period) Span() time.Duration {
	return p.End.Sub(p.Start)
}

// EquivalentDuration reports whether two periods denote the same elapsed
// span regardless of where on the calendar they are anchored. Periods of
// different kinds are never equivalent; instants always are; durations are
// equivalent when their spans differ by less than 10% of the longer span.
// Symmetric and reflexive.
func (p Period) EquivalentDuration(o Period) bool {
	if p.Kind != o.Kind {
		return false
	}
	if p.Kind == PeriodInstant {
		return true
	}
	a, b := p.Span(), o.Span()
	if a == b {
		return true
	}
	longer, diff := a, a-b
	if b > a {
		longer, diff = b, b-a
	}
	if longer <= 0 {
		return false
	}
	return float64(diff)/float64(longer) < durationSpanTolerance
}

func (p Period) String() string {
	if p.Kind == PeriodInstant {
		return p.Start.Format("2006-01-02")
	}
	return fmt.Sprintf("%s to %s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}
