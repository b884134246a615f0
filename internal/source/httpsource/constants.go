package httpsource

import "time"

const (
	// Name identifies this source in logs and metrics.
	Name = "http"

	defaultHTTPTimeout = 20 * time.Second
	defaultMaxBytes    = 2 << 20
	errorBodyLimit     = 512
	defaultUserAgent   = "Mozilla/5.0 (compatible; standings-overlay/1.0)"
	acceptHTML         = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"
)
