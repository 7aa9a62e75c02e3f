package watcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aoewatch/lib/scrapers/aoecompanion"
	"aoewatch/lib/timezone"
)

type OutcomeKind int

const (
	OutcomeFinished OutcomeKind = iota
	OutcomePlaying
	OutcomeNoMatches
	OutcomeApiError
	OutcomeInvalidData
)

// Probe is the uniform result of checking one player's match
// history. Every failure mode degrades to a renderable probe, the
// run itself never aborts on a bad player.
type Probe struct {
	Kind OutcomeKind
	// error detail, only set for OutcomeApiError
	Detail string
	// only set for OutcomeFinished
	FinishedAt time.Time
}

// Status renders the probe as the single-line status string used
// both for change comparison and as the posted message text.
func (p Probe) Status(name string) string {
	var outcome, finishedInfo string
	switch p.Kind {
	case OutcomeFinished:
		outcome = "finished playing at"
		finishedInfo = p.FinishedAt.In(timezone.Location).Format("15:04 (2006-01-02)")
	case OutcomePlaying:
		outcome = "is playing now."
	case OutcomeNoMatches:
		outcome = "has no recent matches"
	case OutcomeApiError:
		outcome = fmt.Sprintf("encountered an API error: %s", p.Detail)
	case OutcomeInvalidData:
		outcome = "returned invalid data"
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", name, outcome, finishedInfo))
}

// parseFinishedTime accepts the companion API's completion
// timestamps: ISO-8601 in UTC, with either a "Z" suffix or an
// explicit zero offset. Timestamps in any other zone are rejected
// rather than silently reinterpreted.
func parseFinishedTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	_, offset := t.Zone()
	if offset != 0 {
		return time.Time{}, fmt.Errorf("unexpected non-UTC offset in timestamp %q", raw)
	}
	return t.UTC(), nil
}

func (s Service) probePlayer(ctx context.Context, player Player) Probe {
	res, err := s.source.GetMatches(ctx, player.ProfileId)
	if errors.Is(err, aoecompanion.ErrInvalidBody) {
		return Probe{Kind: OutcomeInvalidData}
	}
	if err != nil {
		return Probe{Kind: OutcomeApiError, Detail: err.Error()}
	}
	if len(res.Matches) == 0 {
		return Probe{Kind: OutcomeNoMatches}
	}

	// only the most recent match matters
	latest := res.Matches[0]
	if latest.Finished == nil || *latest.Finished == "" {
		return Probe{Kind: OutcomePlaying}
	}

	finishedAt, err := parseFinishedTime(*latest.Finished)
	if err != nil {
		return Probe{Kind: OutcomeInvalidData}
	}
	return Probe{Kind: OutcomeFinished, FinishedAt: finishedAt}
}
