package tailor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobkit/jobscraper/internal/normalize"
)

// JobText fetches a job posting URL and returns the whole page body as
// normalized text, for use as the job description input.
func JobText(ctx context.Context, url string) (string, error) {
	client := &http.Client{Timeout: 15 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("new request %s: %w", url, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}

	text := normalize.CleanText(doc.Find("body").Text())
	if text == "" {
		return "", fmt.Errorf("no text content at %s", url)
	}
	return text, nil
}
