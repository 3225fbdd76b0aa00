package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html>
<head><title>Backend Engineer</title><style>.x{}</style></head>
<body>
	<nav>Home | Jobs | About</nav>
	<div class="job-description">
		<h2>Backend Engineer</h2>
		<p>We build   payment APIs in Go.</p>
		<ul><li>5+ years with Go</li><li>PostgreSQL</li></ul>
	</div>
	<footer>© Example Corp</footer>
	<script>track()</script>
</body>
</html>`

func TestExtractJobText_UsesJobSelectorAndDropsNoise(t *testing.T) {
	text, err := ExtractJobText(jobPageHTML)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer\nWe build payment APIs in Go.\n5+ years with Go\nPostgreSQL", text)
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Example Corp")
	assert.NotContains(t, text, "track()")
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	text, err := ExtractJobText(`<html><body><div>Just a plain page</div></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Just a plain page", text)
}

func TestJobScraper_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	scraper := NewJobScraper(ScraperOptions{UserAgent: "test-agent"})
	text, err := scraper.ScrapeJobDescription(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "We build payment APIs in Go.")
	assert.Equal(t, "test-agent", gotUA)
}

func TestJobScraper_InvalidURL(t *testing.T) {
	scraper := NewJobScraper(ScraperOptions{})

	for _, raw := range []string{"not-a-url", "ftp://example.com/job", "http://"} {
		_, err := scraper.ScrapeJobDescription(context.Background(), raw)
		require.Error(t, err, raw)

		var scrapeErr *ScrapeError
		require.ErrorAs(t, err, &scrapeErr)
		assert.Equal(t, "invalid URL", scrapeErr.Message)
	}
}

func TestJobScraper_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewJobScraper(ScraperOptions{}).ScrapeJobDescription(context.Background(), server.URL)
	require.Error(t, err)

	var scrapeErr *ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
	assert.Contains(t, err.Error(), "404")
}

func TestJobScraper_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer server.Close()

	_, err := NewJobScraper(ScraperOptions{Timeout: 20 * time.Millisecond}).
		ScrapeJobDescription(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestJobSourceResolver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Scraped posting</main></body></html>`))
	}))
	defer server.Close()

	resolver := NewJobSourceResolver(NewJobScraper(ScraperOptions{}))
	ctx := context.Background()

	got, err := resolver.Resolve(ctx, server.URL, "pasted text")
	require.NoError(t, err)
	assert.Equal(t, "Scraped posting", got, "URL takes precedence over text")

	got, err = resolver.Resolve(ctx, "", "pasted text")
	require.NoError(t, err)
	assert.Equal(t, "pasted text", got)

	got, err = resolver.Resolve(ctx, "   ", "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
