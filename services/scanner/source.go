package scanner

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"draftassist-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// PageSource produces the element tree of the page as currently
// rendered. The source contract is top-document-only: framed contexts
// are never served, so they are never scanned.
type PageSource interface {
	Snapshot(ctx context.Context) (Element, error)
}

type SnapshotClientOptions struct {
	// base url of the DOM-snapshot bridge exposing the live page
	BaseUrl string
}

// SnapshotClient fetches rendered-page snapshots over HTTP.
type SnapshotClient struct {
	http *resty.Client
}

func NewSnapshotClient(opts SnapshotClientOptions) *SnapshotClient {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(time.Second * 10)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "draftassist.scanner.http")

	return &SnapshotClient{http: client}
}

func (c *SnapshotClient) Snapshot(ctx context.Context) (Element, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("snapshot returned status %d", res.StatusCode())
	}
	return ParseDocument(bytes.NewReader(res.Body()))
}
