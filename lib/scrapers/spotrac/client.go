// Package spotrac scrapes a salary-contract site's player pages into
// typed Player, Contract, ContractYear and Transaction values. Every
// extractor is bound to the site's current markup; when a landmark
// moves, parsing fails loudly with a *MarkupError instead of returning
// a half-built object.
package spotrac

import (
	"bytes"
	"context"
	"time"

	"capsheet-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/spotrac")

const DefaultBaseURL = "https://www.spotrac.com/nba/"

type Client struct {
	BaseURL string
	http    *resty.Client
}

type ClientOptions struct {
	// BaseURL defaults to DefaultBaseURL, it must end with a slash.
	BaseURL string
}

func NewClient(opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(time.Second)

	telemetry.InstrumentResty(client, "scrapers/spotrac/http")

	return &Client{
		BaseURL: baseURL,
		http:    client,
	}
}

func (c *Client) playerURL(team Team, slugOrID string) string {
	return c.BaseURL + team.Slug + "/" + slugOrID + "/"
}

func (c *Client) fetchDocument(ctx context.Context, link string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		return nil, &FetchError{URL: link, StatusCode: res.StatusCode()}
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}
