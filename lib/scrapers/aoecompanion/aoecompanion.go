// Package aoecompanion is a client for the aoe2companion match
// history API (https://data.aoe2companion.com).
package aoecompanion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aoewatch/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/aoecompanion")

const DefaultBaseUrl = "https://data.aoe2companion.com"

// ErrInvalidBody marks a response that came back 200 but could not
// be decoded as match data. Callers report this differently from
// transport/HTTP failures.
var ErrInvalidBody = errors.New("response is not valid match data")

type Match struct {
	MatchId int64  `json:"matchId"`
	Name    string `json:"name"`
	Started string `json:"started"`
	// null or absent while the match is still running
	Finished *string `json:"finished"`
}

type MatchesResponse struct {
	Matches []Match `json:"matches"`
}

type Client struct {
	http *resty.Client
}

func NewClient(baseUrl string) *Client {
	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 30)
	client.SetHeader("user-agent", "aoewatch/1.0")

	telemetry.InstrumentResty(client, "scrapers/aoecompanion/http")

	return &Client{http: client}
}

// GetMatches returns the match list for a profile, most recent first.
func (c *Client) GetMatches(ctx context.Context, profileId string) (MatchesResponse, error) {
	ctx, span := tracer.Start(ctx, "GetMatches")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"profile_ids": profileId,
			"search":      "",
			"page":        "1",
		}).
		Get("/api/matches")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return MatchesResponse{}, err
	}
	if res.IsError() {
		err := fmt.Errorf("GET /api/matches: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return MatchesResponse{}, err
	}

	var out MatchesResponse
	err = json.Unmarshal(res.Body(), &out)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidBody, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return MatchesResponse{}, err
	}

	return out, nil
}
