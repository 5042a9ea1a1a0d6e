package relay

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"draftassist-backend/lib/events"
	"draftassist-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
)

// Client forwards scanner events to a relay over plain JSON HTTP.
// Delivery is best-effort and single-attempt: a missed event carries no
// meaning the next scan tick won't reproduce, so failures are logged
// and dropped instead of retried.
type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	// base url of the relay, e.g. "http://localhost:8000"
	BaseUrl string
}

func NewClient(options ClientOptions) *Client {
	client := resty.New().
		SetBaseURL(options.BaseUrl).
		SetTimeout(time.Second * 5).
		SetHeader("Content-Type", "application/json")
	telemetry.InstrumentResty(client, "draftassist.services.relay.client")
	return &Client{http: client}
}

func (c *Client) Send(ctx context.Context, ev events.Event) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(ev).
		Post("/events")
	if err != nil {
		slog.WarnContext(ctx, "relay send failed", "type", ev.Type, "err", err)
		return
	}
	if res.StatusCode() != http.StatusOK {
		slog.WarnContext(
			ctx, "relay rejected event",
			"type", ev.Type, "status", res.StatusCode(),
		)
	}
}
