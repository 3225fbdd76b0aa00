package services

import (
	"context"
	"strings"
)

type JobSourceResolver interface {
	Resolve(ctx context.Context, pageURL, text string) (string, error)
}

type jobSourceResolver struct {
	scraper JobScraper
}

func NewJobSourceResolver(scraper JobScraper) JobSourceResolver {
	return &jobSourceResolver{scraper: scraper}
}

// Resolve returns the scraped page when a URL is given, otherwise the
// supplied text as-is (possibly empty).
func (r *jobSourceResolver) Resolve(ctx context.Context, pageURL, text string) (string, error) {
	if pageURL = strings.TrimSpace(pageURL); pageURL != "" {
		return r.scraper.ScrapeJobDescription(ctx, pageURL)
	}
	return text, nil
}
