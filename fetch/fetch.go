package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Options struct {
	Timeout   time.Duration
	Retries   int
	UserAgent string
}

type Client struct {
	http *resty.Client
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetHeader("User-Agent", opts.UserAgent)
	client.SetRetryCount(opts.Retries)
	client.SetRetryWaitTime(time.Second)

	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		slog.DebugContext(
			res.Request.Context(), "fetched page",
			"url", res.Request.URL,
			"status", res.StatusCode(),
			"seconds", res.Time().Seconds(),
		)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		slog.ErrorContext(req.Context(), "request failed", "url", req.URL, "err", err)
	})

	return &Client{http: client}
}

// Document fetches a page and parses it.
func (c *Client) Document(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetching %v: unexpected status %v", url, res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
}

// LoadFile parses a page saved to disk, for sites that only render their full
// content in a browser.
func LoadFile(path string) (*goquery.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return goquery.NewDocumentFromReader(file)
}
