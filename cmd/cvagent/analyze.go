package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alfredoptarigan/cv-agent/internal/config"
	"alfredoptarigan/cv-agent/internal/models"
	"alfredoptarigan/cv-agent/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how well a CV fits a job description",
	RunE:  runAnalyze,
}

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Generate a tailored CV document for a job description",
	RunE:  runTailor,
}

var (
	jobCVPath string
	jobURL    string
	jobText   string
	tailorOut string
)

func init() {
	for _, cmd := range []*cobra.Command{analyzeCmd, tailorCmd} {
		cmd.Flags().StringVar(&jobCVPath, "cv", "", "Path to the CV file")
		cmd.Flags().StringVar(&jobURL, "url", "", "Job posting URL (takes precedence over --text)")
		cmd.Flags().StringVar(&jobText, "text", "", "Job description text")
		_ = cmd.MarkFlagRequired("cv")
	}
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Output directory (defaults to TAILORED_PATH)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(tailorCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	agent, req, err := newLocalAgent("")
	if err != nil {
		return err
	}

	resp, err := agent.AnalyzeFit(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printJSON(cmd, resp)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	agent, req, err := newLocalAgent(tailorOut)
	if err != nil {
		return err
	}

	resp, err := agent.GenerateTailoredCV(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printJSON(cmd, resp)
}

// newLocalAgent serves the CV straight from its own directory, so no upload
// step is needed.
func newLocalAgent(outDir string) (services.CVAgentService, *models.JobRequest, error) {
	cfg := config.Load()

	absCV, err := filepath.Abs(jobCVPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve CV path: %w", err)
	}
	if _, err := os.Stat(absCV); err != nil {
		return nil, nil, fmt.Errorf("CV file not found: %w", err)
	}

	if outDir == "" {
		outDir = cfg.Storage.TailoredPath
	}
	tailored := services.NewStorageService(outDir)
	if err := tailored.EnsureDir(); err != nil {
		return nil, nil, err
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return nil, nil, err
	}
	matcher := services.NewMatcher(geminiService, cfg.Gemini.Temperature, cfg.Gemini.MaxRetries)

	scraper := services.NewJobScraper(services.ScraperOptions{
		Timeout:        cfg.Scraper.Timeout,
		UserAgent:      cfg.Scraper.UserAgent,
		UseBrowser:     cfg.Scraper.UseBrowser,
		BrowserTimeout: cfg.Scraper.BrowserTimeout,
	})

	agent := services.NewCVAgentService(
		services.NewStorageService(filepath.Dir(absCV)),
		services.NewTextExtractor(),
		services.NewJobSourceResolver(scraper),
		matcher,
		matcher,
		services.NewDocumentWriter(tailored),
		nil,
	)

	req := &models.JobRequest{
		CVFilename: filepath.Base(absCV),
		URL:        jobURL,
		Text:       jobText,
	}

	return agent, req, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
