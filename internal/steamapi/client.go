// Package steamapi fetches app detail records from the storefront's
// appdetails endpoint. One attempt per lookup, no retry.
package steamapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"steam-gamedata/internal/errs"
	"steam-gamedata/internal/models"
)

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	return &Client{http: client}
}

// envelope is one value of the appdetails response object, which is keyed
// by the requested appID itself.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// AppDetails fetches and unwraps the detail record for one appID.
func (c *Client) AppDetails(ctx context.Context, appID string) (*models.AppDetails, error) {
	start := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("appids", appID).
		Get("/api/appdetails")
	if err != nil {
		return nil, &errs.UpstreamFetch{URL: c.http.BaseURL + "/api/appdetails", Err: err}
	}
	url := res.Request.URL
	if res.IsError() {
		return nil, &errs.UpstreamFetch{URL: url, Err: fmt.Errorf("http status %d", res.StatusCode())}
	}
	slog.DebugContext(ctx, "appdetails response", "appID", appID, "elapsed", time.Since(start))

	var body map[string]envelope
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, &errs.MalformedResponse{URL: url, Reason: "body is not valid JSON", Err: err}
	}
	env, ok := body[appID]
	if !ok {
		return nil, &errs.MalformedResponse{URL: url, Reason: fmt.Sprintf("envelope missing key %q", appID)}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, &errs.MalformedResponse{URL: url, Reason: fmt.Sprintf("envelope %q has no data field", appID)}
	}

	var details models.AppDetails
	if err := json.Unmarshal(env.Data, &details); err != nil {
		return nil, &errs.MalformedResponse{URL: url, Reason: "data field is not a detail record", Err: err}
	}
	return &details, nil
}
