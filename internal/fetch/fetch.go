// Package fetch retrieves page markup either through a headless browser
// session (for script-rendered pages) or a plain HTTP client, producing a
// parsed document for the site scrapers to consume.
package fetch

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/jobkit/jobscraper/internal/config"
)

// Failure taxonomy. Callers match with errors.Is.
var (
	// ErrFetchTimeout covers requests that ran into their own timeout.
	ErrFetchTimeout = errors.New("fetch timeout")
	// ErrFetchBlocked covers non-2xx and non-HTML responses.
	ErrFetchBlocked = errors.New("fetch blocked")
	// ErrParseFailure covers markup that could not be parsed.
	ErrParseFailure = errors.New("parse failure")
	// ErrDriverInit covers a browser session that could not start.
	ErrDriverInit = errors.New("browser driver init failed")
)

// Fetcher retrieves and parses one page. Implementations never return a
// partially parsed document: it is either a usable document or an error.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
	Close() error
}

// New selects the fetch strategy once. When the browser is enabled but its
// session fails to start, the fetcher permanently downgrades to direct HTTP
// for its lifetime; the failure is logged, never fatal.
func New(cfg *config.AppConfig) Fetcher {
	if cfg.Browser.Enabled {
		b, err := NewBrowserFetcher(cfg)
		if err == nil {
			log.Info().Msg("browser session initialized")
			return b
		}
		log.Warn().Err(err).Msg("browser init failed, downgrading to direct HTTP")
	}
	return NewHTTPFetcher(cfg)
}
