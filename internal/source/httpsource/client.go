package httpsource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/preston-bernstein/standings-overlay/internal/source"
)

// Config controls how the client reaches the standings page.
type Config struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	MaxBytes   int64
	HTTPClient *http.Client
}

// Client downloads the standings page over HTTP.
type Client struct {
	url        string
	userAgent  string
	maxBytes   int64
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        strings.TrimSpace(cfg.URL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		maxBytes:   resolveMaxBytes(cfg.MaxBytes),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchMarkup performs one GET and returns the body decoded to UTF-8.
func (c *Client) FetchMarkup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", Name, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHTML)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: fetch %s: %w", Name, c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", &source.RateLimitError{
			Source:     Name,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "standings page rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return "", &source.StatusError{
			Source:     Name,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%s: read body: %w", Name, err)
	}
	if int64(len(raw)) > c.maxBytes {
		return "", fmt.Errorf("%s: %w (limit %d bytes)", Name, source.ErrResponseTooLarge, c.maxBytes)
	}
	return decode(raw, resp.Header.Get("Content-Type"))
}

// decode converts the body to UTF-8. Bodies that already are valid UTF-8 and
// declare no charset pass through untouched; otherwise the declared, meta or sniffed
// encoding is used.
func decode(raw []byte, contentType string) (string, error) {
	if utf8.Valid(raw) && !declaresCharset(contentType) {
		return string(raw), nil
	}
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", fmt.Errorf("%s: decode body: %w", Name, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%s: decode body: %w", Name, err)
	}
	return string(out), nil
}

func declaresCharset(contentType string) bool {
	_, params, err := mime.ParseMediaType(contentType)
	return err == nil && params["charset"] != ""
}
