// Package scrape runs the pipeline for one or many job-posting URLs:
// fetch -> site detection -> site-specific extraction -> enrichment.
package scrape

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jobkit/jobscraper/internal/config"
	"github.com/jobkit/jobscraper/internal/enrich"
	"github.com/jobkit/jobscraper/internal/fetch"
	"github.com/jobkit/jobscraper/internal/sites"
	"github.com/jobkit/jobscraper/pkg/models"
)

// Scraper orchestrates the pipeline over a single shared fetcher. URLs are
// processed strictly sequentially; the browser session, when in use, is
// reused across the whole batch.
type Scraper struct {
	cfg     *config.AppConfig
	fetcher fetch.Fetcher
}

// New builds a Scraper; the fetch mode (browser or direct HTTP) is decided
// here, once, and holds for the Scraper's lifetime.
func New(cfg *config.AppConfig) *Scraper {
	return &Scraper{cfg: cfg, fetcher: fetch.New(cfg)}
}

// NewWithFetcher is used by tests to inject a fetcher.
func NewWithFetcher(cfg *config.AppConfig, f fetch.Fetcher) *Scraper {
	return &Scraper{cfg: cfg, fetcher: f}
}

// ScrapeOne fetches a single posting and returns the enriched record, or an
// error when the page could not be fetched or parsed.
func (s *Scraper) ScrapeOne(ctx context.Context, url string) (*models.JobRecord, error) {
	doc, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	site := sites.Detect(url)
	log.Debug().Str("url", url).Str("site", string(site)).Msg("detected site type")

	job := sites.For(site, s.cfg).Extract(doc, url)

	// Enrichment assumes the description is already normalized; the site
	// scrapers guarantee that via CleanText.
	if job.ExperienceRequired == "" {
		job.ExperienceRequired = enrich.Experience(job.Description)
	}
	found, additional := enrich.Skills(job.Description,
		s.cfg.Extraction.SkillKeywords, s.cfg.Extraction.MaxAdditionalSkills)
	job.RequiredSkills = enrich.MergeSkills(found, additional)
	job.Responsibilities = enrich.Responsibilities(doc, job.Description,
		s.cfg.Extraction.ResponsibilityCues, s.cfg.Extraction.MaxResponsibilities)

	return &job, nil
}

// ScrapeMany processes each URL in order with a fixed pause between
// requests. Failed URLs are logged and skipped, never retried; the returned
// records preserve input order for the successful subset.
func (s *Scraper) ScrapeMany(ctx context.Context, urls []string) []models.JobRecord {
	var jobs []models.JobRecord

	for i, url := range urls {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Msg("batch cancelled")
			break
		}
		log.Info().Int("n", i+1).Int("total", len(urls)).Str("url", url).Msg("processing job")

		job, err := s.ScrapeOne(ctx, url)
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("scrape failed, skipping")
		} else {
			jobs = append(jobs, *job)
		}

		if i < len(urls)-1 {
			time.Sleep(s.cfg.Scraper.Delay)
		}
	}

	return jobs
}

// Close releases the underlying fetcher. When the browser mode is active
// this tears down the browser process; leaking it leaves a child resident.
func (s *Scraper) Close() error {
	return s.fetcher.Close()
}
