package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/mempirate/scrapetool/document"
	"github.com/mempirate/scrapetool/log"
)

// FIRECRAWL_API is the scrape endpoint of a self-hosted Firecrawl instance.
const FIRECRAWL_API = "http://localhost:3002/v1/scrape"

type scrapeRequest struct {
	URL string `json:"url"`
}

// FirecrawlScraper is a scraper that posts URLs to a Firecrawl-compatible
// /v1/scrape endpoint.
type FirecrawlScraper struct {
	log zerolog.Logger

	client   *http.Client
	endpoint string
}

// NewFirecrawlScraper returns a scraper for the given endpoint. An empty
// endpoint means FIRECRAWL_API. A zero timeout leaves the request unbounded.
func NewFirecrawlScraper(endpoint string, timeout time.Duration) *FirecrawlScraper {
	if endpoint == "" {
		endpoint = FIRECRAWL_API
	}

	return &FirecrawlScraper{
		log:      log.NewLogger("scrape"),
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}
}

// Endpoint returns the URL requests are sent to.
func (s *FirecrawlScraper) Endpoint() string {
	return s.endpoint
}

// Scrape sends url to the service and returns the resulting document.
//
// Transport failures and non-2xx statuses return a *RequestError. A response
// with a falsy "success" field returns a *ServiceError carrying the service's
// "error" message.
func (s *FirecrawlScraper) Scrape(ctx context.Context, url string) (*document.Document, error) {
	payload, err := json.Marshal(scrapeRequest{URL: url})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode scrape request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &RequestError{Err: errors.Wrap(err, "failed to build request")}
	}

	req.Header.Set("Content-Type", "application/json")

	s.log.Debug().Str("url", url).Str("endpoint", s.endpoint).Msg("Sending scrape request")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Err: errors.Wrap(err, "failed to read response body")}
	}

	s.log.Debug().Int("status", resp.StatusCode).Dur("duration", time.Since(start)).Int("bytes", len(body)).Msg("Scrape response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("%s for url: %s", resp.Status, s.endpoint),
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &RequestError{StatusCode: resp.StatusCode, Err: errors.New("response body is not valid JSON")}
	}

	return parseResponse(body)
}

func parseResponse(body []byte) (*document.Document, error) {
	result := gjson.ParseBytes(body)

	if !truthy(result.Get("success")) {
		msg := UNKNOWN_ERROR
		if e := result.Get("error"); e.Exists() && e.Type != gjson.Null {
			msg = e.String()
		}

		return nil, &ServiceError{Message: msg}
	}

	data := result.Get("data")
	if !data.IsObject() {
		return nil, errors.New("response is missing the data object")
	}

	return &document.Document{
		Raw:      body,
		Markdown: data.Get("markdown").String(),
		HTML:     data.Get("html").String(),
	}, nil
}

// truthy reports whether a JSON value counts as set: false, null, 0, "" and
// empty arrays or objects don't.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		empty := true
		r.ForEach(func(_, _ gjson.Result) bool {
			empty = false
			return false
		})
		return !empty
	default:
		return false
	}
}
