package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jobkit/jobscraper/internal/render"
	"github.com/jobkit/jobscraper/internal/resume"
	"github.com/jobkit/jobscraper/internal/tailor"
)

func main() {
	resumeFile := flag.String("resume", "", "Resume file (PDF, DOCX or plain text)")
	jobSource := flag.String("job", "", "Job description: a URL or a text file")
	outFile := flag.String("out", "tailored_resume.docx", "Output file for the tailored resume (.docx or .pdf)")
	questions := flag.Bool("questions", true, "Also generate interview questions")
	resources := flag.Bool("resources", true, "Also suggest learning resources")
	model := flag.String("model", "", "Chat model name (default gpt-4o-mini)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	_ = godotenv.Load()
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal().Msg("OPENAI_API_KEY is not set")
	}

	if *resumeFile == "" || *jobSource == "" {
		flag.Usage()
		os.Exit(2)
	}

	resumeText, err := resume.FromFile(*resumeFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *resumeFile).Msg("reading resume")
	}
	if strings.TrimSpace(resumeText) == "" {
		log.Fatal().Str("file", *resumeFile).Msg("resume file yielded no text")
	}

	ctx := context.Background()

	jobDesc, err := loadJobDescription(ctx, *jobSource)
	if err != nil {
		log.Fatal().Err(err).Msg("loading job description")
	}

	client := tailor.New(apiKey, os.Getenv("OPENAI_BASE_URL"), *model)

	log.Info().Msg("tailoring resume")
	tailored, err := client.TailorResume(ctx, resumeText, jobDesc)
	if err != nil {
		log.Fatal().Err(err).Msg("tailoring resume")
	}
	if err := writeResume(tailored, *outFile); err != nil {
		log.Fatal().Err(err).Str("file", *outFile).Msg("writing tailored resume")
	}
	log.Info().Str("file", *outFile).Msg("tailored resume written")

	if *questions {
		qs, err := client.InterviewQuestions(ctx, tailored)
		if err != nil {
			log.Error().Err(err).Msg("generating interview questions")
		} else {
			fmt.Println("\n=== Interview Questions ===")
			fmt.Println(qs)
		}
	}

	if *resources {
		rs, err := client.LearningResources(ctx, tailored)
		if err != nil {
			log.Error().Err(err).Msg("suggesting learning resources")
		} else {
			fmt.Println("\n=== Learning Resources ===")
			fmt.Println(rs)
		}
	}
}

// writeResume picks the renderer from the output extension; anything that is
// not a PDF gets the DOCX deliverable.
func writeResume(text, outPath string) error {
	if strings.EqualFold(filepath.Ext(outPath), ".pdf") {
		return render.WritePDF(text, outPath)
	}
	return render.WriteDOCX(text, outPath)
}

// loadJobDescription treats the source as a URL when it looks like one,
// otherwise reads it as a text file.
func loadJobDescription(ctx context.Context, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return tailor.JobText(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
