package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobkit/jobscraper/internal/config"
	jobio "github.com/jobkit/jobscraper/internal/io"
	"github.com/jobkit/jobscraper/internal/scrape"
)

func main() {
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	inputFile := flag.String("input", "", "File containing job URLs to scrape (one per line)")
	singleURL := flag.String("url", "", "Single job URL to scrape")
	csvFile := flag.String("csv", "", "CSV output file (default job_data.csv)")
	jsonFile := flag.String("json", "", "JSON output file (default job_data.json)")
	enableBrowser := flag.Bool("browser", false, "Enable headless-browser fetching for script-rendered pages")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var appConfig *config.AppConfig
	if *configFile != "" {
		var err error
		appConfig, err = config.Load(*configFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *configFile).Msg("loading configuration")
		}
		log.Info().Str("file", *configFile).Msg("loaded configuration")
	} else {
		appConfig = config.CreateDefault()
	}

	if *inputFile != "" {
		appConfig.IO.InputFile = *inputFile
	}
	if *csvFile != "" {
		appConfig.IO.CSVFile = *csvFile
	}
	if *jsonFile != "" {
		appConfig.IO.JSONFile = *jsonFile
	}
	if *enableBrowser {
		appConfig.Browser.Enabled = true
	}

	var urls []string
	if *singleURL != "" {
		urls = []string{*singleURL}
	} else {
		var err error
		urls, err = jobio.NewURLReader(&appConfig.IO).GetURLs()
		if err != nil {
			log.Fatal().Err(err).Msg("reading URLs")
		}
	}
	if len(urls) == 0 {
		log.Fatal().Msg("no URLs to scrape")
	}

	log.Info().Int("urls", len(urls)).Msg("starting scrape")

	scraper := scrape.New(appConfig)
	defer scraper.Close()

	jobs := scraper.ScrapeMany(context.Background(), urls)
	if len(jobs) == 0 {
		log.Error().Int("urls", len(urls)).Msg("no jobs were successfully scraped")
		return
	}

	writer := jobio.NewResultWriter(&appConfig.IO)
	if err := writer.Save(jobs); err != nil {
		log.Fatal().Err(err).Msg("saving results")
	}

	for i, job := range jobs {
		log.Info().Int("n", i+1).Str("title", job.Title).Str("company", job.Company).Msg("scraped")
	}
	log.Info().
		Int("scraped", len(jobs)).
		Int("failed", len(urls)-len(jobs)).
		Str("csv", appConfig.IO.CSVFile).
		Str("json", appConfig.IO.JSONFile).
		Msg("done")
}
