package webpage

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/config"
	"github.com/aleister1102/unfurler/internal/errorwrapper"
	"github.com/aleister1102/unfurler/internal/httpclient"
)

// downloadUserAgent is sent on binary downloads instead of the page
// identifying header.
const downloadUserAgent = "unfurler/1.0"

// Fetcher retrieves generic internal pages and their images. Every page
// request carries the fixed identifying User-Agent; any failure yields
// "no page" rather than an error.
type Fetcher struct {
	httpClient *httpclient.HTTPClient
	logger     zerolog.Logger
}

// NewFetcher creates a page fetcher from configuration
func NewFetcher(cfg config.PageConfig, logger zerolog.Logger) (*Fetcher, error) {
	moduleLogger := logger.With().Str("module", "PageFetcher").Logger()

	httpClient, err := httpclient.NewHTTPClientBuilder(moduleLogger).
		WithTimeout(time.Duration(cfg.TimeoutSecs) * time.Second).
		WithUserAgent(cfg.UserAgent).
		WithMaxContentSize(cfg.MaxContentSize).
		Build()
	if err != nil {
		return nil, err
	}

	return &Fetcher{
		httpClient: httpClient,
		logger:     moduleLogger,
	}, nil
}

// Fetch retrieves one page. The bool result is false when the page is
// unavailable for any reason.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Page, bool) {
	resp, err := f.httpClient.Get(ctx, url, nil)
	if err != nil {
		f.logger.Debug().Err(err).Str("url", url).Msg("Page fetch failed")
		return Page{}, false
	}

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug().Int("status_code", resp.StatusCode).Str("url", url).Msg("Page returned non-OK status")
		return Page{}, false
	}

	return Page{URL: url, HTML: resp.Body}, true
}

// FetchAll retrieves all pages concurrently and returns the successful
// ones in the original order of urls. Failed fetches are dropped.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []Page {
	if len(urls) == 0 {
		return nil
	}

	results := make([]*Page, len(urls))
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			if page, ok := f.Fetch(ctx, url); ok {
				results[i] = &page
			}
		}(i, url)
	}
	wg.Wait()

	pages := make([]Page, 0, len(urls))
	for _, page := range results {
		if page != nil {
			pages = append(pages, *page)
		}
	}
	return pages
}

// Download fetches a binary (image or favicon) and writes it to destPath.
// Failures are isolated: the caller omits the visual and keeps the preview.
func (f *Fetcher) Download(ctx context.Context, url, destPath string) error {
	resp, err := f.httpClient.Get(ctx, url, map[string]string{"User-Agent": downloadUserAgent})
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug().Int("status_code", resp.StatusCode).Str("url", url).Msg("Download returned non-OK status")
		return errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, "download failed", url)
	}

	return os.WriteFile(destPath, resp.Body, 0644)
}
