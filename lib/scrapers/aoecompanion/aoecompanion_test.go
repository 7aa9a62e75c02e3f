package aoecompanion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"aoewatch/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestGetMatches(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/aoecompanion")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/matches", r.URL.Path)
		require.Equal(t, "6446904", r.URL.Query().Get("profile_ids"))
		require.Equal(t, "1", r.URL.Query().Get("page"))

		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{
			"matches": [
				{"matchId": 3, "started": "2024-03-10T17:40:00Z", "finished": "2024-03-10T18:30:00Z"},
				{"matchId": 2, "started": "2024-03-09T20:00:00Z", "finished": "2024-03-09T20:45:00Z"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	res, err := client.GetMatches(context.Background(), "6446904")
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, res.Matches, 2)
	require.NotNil(t, res.Matches[0].Finished)
	require.Equal(t, "2024-03-10T18:30:00Z", *res.Matches[0].Finished)
}

func TestGetMatchesOngoing(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/aoecompanion")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"matches": [{"matchId": 9, "started": "2024-03-10T17:40:00Z", "finished": null}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	res, err := client.GetMatches(context.Background(), "439001")
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, res.Matches, 1)
	require.Nil(t, res.Matches[0].Finished)
}

func TestGetMatchesHttpError(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/aoecompanion")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetMatches(context.Background(), "255507")
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrInvalidBody))
}

func TestGetMatchesInvalidBody(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/aoecompanion")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetMatches(context.Background(), "903496")
	require.ErrorIs(t, err, ErrInvalidBody)
}
