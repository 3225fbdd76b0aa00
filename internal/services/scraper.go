package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// MinJobTextLength is the shortest plain-HTTP extraction accepted before the
// headless browser fallback is tried.
const MinJobTextLength = 200

const maxPageBytes = 5 << 20

var jobContentSelectors = []string{
	".job-description",
	".job__description",
	"#job-description",
	".posting-page",
	"[data-automation-id='jobDescription']",
	".job-details",
	"main",
	"article",
	"#content",
	".content",
}

const noiseSelectors = "nav, footer, header, script, style, noscript, iframe, svg, form, .cookie-banner, .ad, .ads, .sidebar"

type ScrapeError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ScrapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scrape %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("scrape %s: %s", e.URL, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Cause
}

type JobScraper interface {
	ScrapeJobDescription(ctx context.Context, pageURL string) (string, error)
}

type ScraperOptions struct {
	Timeout        time.Duration
	UserAgent      string
	UseBrowser     bool
	BrowserTimeout time.Duration
}

type jobScraper struct {
	client *http.Client
	opts   ScraperOptions
}

func NewJobScraper(opts ScraperOptions) JobScraper {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.BrowserTimeout <= 0 {
		opts.BrowserTimeout = 45 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; CVAgent/1.0)"
	}

	return &jobScraper{
		client: &http.Client{Timeout: opts.Timeout},
		opts:   opts,
	}
}

func (s *jobScraper) ScrapeJobDescription(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &ScrapeError{URL: pageURL, Message: "invalid URL", Cause: err}
	}

	html, err := s.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	text, err := ExtractJobText(html)
	if err != nil {
		return "", &ScrapeError{URL: pageURL, Message: "failed to extract text", Cause: err}
	}

	if s.opts.UseBrowser && len(text) < MinJobTextLength {
		log.Printf("🌐 Job page %s yielded %d chars, rendering with headless browser", pageURL, len(text))
		rendered, err := s.render(ctx, pageURL)
		if err != nil {
			log.Printf("⚠️  Browser rendering failed for %s: %v", pageURL, err)
			return text, nil
		}
		if browserText, err := ExtractJobText(rendered); err == nil && len(browserText) > len(text) {
			text = browserText
		}
	}

	return text, nil
}

func (s *jobScraper) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &ScrapeError{URL: pageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &ScrapeError{URL: pageURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &ScrapeError{URL: pageURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", &ScrapeError{URL: pageURL, Message: "failed to read response body", Cause: err}
	}

	return string(body), nil
}

func (s *jobScraper) render(ctx context.Context, pageURL string) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.UserAgent(s.opts.UserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, s.opts.BrowserTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &ScrapeError{URL: pageURL, Message: "browser rendering failed", Cause: err}
	}

	return html, nil
}

// ExtractJobText strips page chrome and returns the job posting body as
// newline separated text.
func ExtractJobText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelectors).Remove()

	var content *goquery.Selection
	for _, selector := range jobContentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	// Block elements would otherwise run together in Text().
	content.Find("p, li, h1, h2, h3, h4, h5, h6, div, br, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return collapseLines(content.Text()), nil
}

func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
