package watcher

import (
	"context"
	"errors"
	"testing"

	"aoewatch/lib/scrapers/aoecompanion"
	"aoewatch/lib/telemetry"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	responses map[string]aoecompanion.MatchesResponse
	errs      map[string]error
}

func (f fakeSource) GetMatches(ctx context.Context, profileId string) (aoecompanion.MatchesResponse, error) {
	if err, ok := f.errs[profileId]; ok {
		return aoecompanion.MatchesResponse{}, err
	}
	return f.responses[profileId], nil
}

func str(s string) *string {
	return &s
}

func TestProbeStatuses(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/watcher")
	defer cleanup()

	source := fakeSource{
		responses: map[string]aoecompanion.MatchesResponse{
			// finished at 18:30 UTC == 15:30 Buenos Aires
			"1": {Matches: []aoecompanion.Match{
				{MatchId: 10, Finished: str("2024-03-10T18:30:00Z")},
				{MatchId: 9, Finished: str("2024-03-01T00:00:00Z")},
			}},
			"2": {Matches: []aoecompanion.Match{{MatchId: 11, Finished: nil}}},
			"3": {Matches: []aoecompanion.Match{}},
			// explicit zero offset is equivalent to "Z"
			"4": {Matches: []aoecompanion.Match{{MatchId: 12, Finished: str("2024-03-10T18:30:00+00:00")}}},
			// a non-UTC offset is not trusted
			"5": {Matches: []aoecompanion.Match{{MatchId: 13, Finished: str("2024-03-10T18:30:00+05:00")}}},
		},
		errs: map[string]error{
			"6": errors.New(`Get "https://example.com": connection refused`),
			"7": aoecompanion.ErrInvalidBody,
		},
	}
	service := NewService(Options{Source: source})
	ctx := context.Background()

	cases := []struct {
		name      string
		profileId string
		expect    string
	}{
		{"Carpincho", "1", "Carpincho finished playing at 15:30 (2024-03-10)"},
		{"alanthekat", "2", "alanthekat is playing now."},
		{"Dicopato", "3", "Dicopato has no recent matches"},
		{"Nanox", "4", "Nanox finished playing at 15:30 (2024-03-10)"},
		{"Dicopatito", "5", "Dicopatito returned invalid data"},
		{"Sir Monkey", "6", `Sir Monkey encountered an API error: Get "https://example.com": connection refused`},
		{"thexcarpincho", "7", "thexcarpincho returned invalid data"},
	}

	for _, test := range cases {
		probe := service.probePlayer(ctx, Player{Name: test.name, ProfileId: test.profileId})
		require.Equal(t, test.expect, probe.Status(test.name))
	}
}

func TestParseFinishedTime(t *testing.T) {
	zulu, err := parseFinishedTime("2024-03-10T18:30:00Z")
	require.NoError(t, err)

	explicit, err := parseFinishedTime("2024-03-10T18:30:00+00:00")
	require.NoError(t, err)
	require.True(t, zulu.Equal(explicit))

	_, err = parseFinishedTime("2024-03-10T18:30:00+05:00")
	require.Error(t, err)

	_, err = parseFinishedTime("yesterday")
	require.Error(t, err)
}
