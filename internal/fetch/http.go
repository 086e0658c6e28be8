package fetch

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobkit/jobscraper/internal/config"
	"github.com/jobkit/jobscraper/internal/proxy"
)

// HTTPFetcher is the direct-HTTP fallback: a single GET per URL with a fixed
// timeout, rejecting non-2xx and non-HTML responses.
type HTTPFetcher struct {
	cfg    *config.AppConfig
	client *http.Client
}

// NewHTTPFetcher creates the direct-HTTP fetcher, applying proxy settings
// when configured.
func NewHTTPFetcher(cfg *config.AppConfig) *HTTPFetcher {
	transport, err := proxy.NewManager(&cfg.Proxies).Transport()
	if err != nil || transport == nil {
		transport = &http.Transport{}
	}
	return &HTTPFetcher{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.Scraper.Timeout,
		},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		var ne net.Error
		if (errors.As(err, &ne) && ne.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrFetchTimeout, url)
		}
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d for %s", ErrFetchBlocked, resp.StatusCode, url)
	}
	contentType := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(contentType, "html") {
		return nil, fmt.Errorf("%w: non-HTML content-type %q for %s", ErrFetchBlocked, contentType, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return doc, nil
}

// Close is a no-op; the HTTP client holds no long-lived resources.
func (f *HTTPFetcher) Close() error { return nil }

func (f *HTTPFetcher) userAgent() string {
	agents := f.cfg.Scraper.UserAgents
	if len(agents) == 0 {
		return ""
	}
	return agents[rand.Intn(len(agents))]
}
