// Package bluesky is a minimal ATProto XRPC client, just enough to
// authenticate with an app password and publish text posts.
package bluesky

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aoewatch/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("bluesky")

const DefaultBaseUrl = "https://bsky.social"

type Client struct {
	http *resty.Client
	did  string
}

func NewClient(baseUrl string) *Client {
	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "bluesky/http")

	return &Client{http: client}
}

type session struct {
	AccessJwt string `json:"accessJwt"`
	Did       string `json:"did"`
	Handle    string `json:"handle"`
}

// Login creates an ATProto session with an identifier + app password
// and holds the access token for subsequent posts.
func (c *Client) Login(ctx context.Context, identifier, appPassword string) error {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(map[string]string{
			"identifier": identifier,
			"password":   appPassword,
		}).
		Post("/xrpc/com.atproto.server.createSession")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	if res.IsError() {
		err := fmt.Errorf("createSession: %s: %s", res.Status(), res.String())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	var sess session
	err = json.Unmarshal(res.Body(), &sess)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("createSession: decode response: %w", err)
	}

	c.http.SetAuthToken(sess.AccessJwt)
	c.did = sess.Did
	return nil
}

// PostRef identifies a created post.
type PostRef struct {
	Uri string `json:"uri"`
	Cid string `json:"cid"`
}

type postRecord struct {
	Type      string `json:"$type"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// PostText publishes a standalone text post on the logged-in account.
func (c *Client) PostText(ctx context.Context, text string) (PostRef, error) {
	ctx, span := tracer.Start(ctx, "PostText")
	defer span.End()

	if c.did == "" {
		err := fmt.Errorf("not logged in")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return PostRef{}, err
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(map[string]any{
			"repo":       c.did,
			"collection": "app.bsky.feed.post",
			"record": postRecord{
				Type:      "app.bsky.feed.post",
				Text:      text,
				CreatedAt: time.Now().UTC().Format(time.RFC3339),
			},
		}).
		Post("/xrpc/com.atproto.repo.createRecord")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return PostRef{}, err
	}
	if res.IsError() {
		err := fmt.Errorf("createRecord: %s: %s", res.Status(), res.String())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return PostRef{}, err
	}

	var ref PostRef
	err = json.Unmarshal(res.Body(), &ref)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return PostRef{}, fmt.Errorf("createRecord: decode response: %w", err)
	}

	return ref, nil
}
