package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/jobkit/jobscraper/internal/config"
)

// BrowserFetcher drives a single long-lived headless browser session shared
// across every URL in a batch. Close must be called or the browser process
// stays resident.
type BrowserFetcher struct {
	cfg         *config.AppConfig
	browserCtx  context.Context
	cancelCtx   context.CancelFunc
	cancelAlloc context.CancelFunc
}

// NewBrowserFetcher starts the headless browser. Startup failure is reported
// as ErrDriverInit so the caller can downgrade.
func NewBrowserFetcher(cfg *config.AppConfig) (*BrowserFetcher, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Browser.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(cfg.Browser.UserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)

	// Running with no actions forces the browser process to launch, so a
	// missing or broken Chrome surfaces here rather than on the first URL.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelCtx()
		cancelAlloc()
		return nil, fmt.Errorf("%w: %v", ErrDriverInit, err)
	}

	return &BrowserFetcher{
		cfg:         cfg,
		browserCtx:  browserCtx,
		cancelCtx:   cancelCtx,
		cancelAlloc: cancelAlloc,
	}, nil
}

// Fetch navigates the shared session to the URL, waits for the document body
// up to the configured wait timeout, sleeps the fixed settle delay for
// dynamic content, then parses the rendered markup. The wait and the
// settle-plus-read phases carry separate deadlines, so a body appearing late
// in the wait window still gets the full settle delay.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	waitBudget, readBudget := fetchBudgets(&f.cfg.Browser)

	waitCtx, cancelWait := context.WithTimeout(f.browserCtx, waitBudget)
	defer cancelWait()
	err := chromedp.Run(waitCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrFetchTimeout, url)
		}
		return nil, fmt.Errorf("browser fetch %s: %w", url, err)
	}

	readCtx, cancelRead := context.WithTimeout(f.browserCtx, readBudget)
	defer cancelRead()
	var html string
	err = chromedp.Run(readCtx,
		chromedp.Sleep(f.cfg.Browser.SettleDelay),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrFetchTimeout, url)
		}
		return nil, fmt.Errorf("browser fetch %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return doc, nil
}

// fetchBudgets splits a fetch into its two deadlines: the navigation plus
// body wait, and the settle sleep plus HTML read. The read budget leaves an
// element-wait's worth of headroom beyond the sleep itself.
func fetchBudgets(b *config.BrowserConfig) (wait, read time.Duration) {
	return b.WaitTimeout, b.SettleDelay + b.WaitTimeout
}

// Close releases the browser session and its child process.
func (f *BrowserFetcher) Close() error {
	f.cancelCtx()
	f.cancelAlloc()
	return nil
}
