// ABOUTME: Website scraper fetches company sites with bounded retries and extracts snippets
// ABOUTME: Folds every failure into a scrape outcome so one bad site never aborts a batch

package scrape

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"leadscout-api/core/domain"
	"leadscout-api/core/interfaces"
)

const (
	// scrapeCachePrefix namespaces cached snippets
	scrapeCachePrefix = "scrape:"

	// scrapeCacheTTL is how long a successful snippet stays cached
	scrapeCacheTTL = 24 * time.Hour
)

// Config holds the scraper's retry and timeout policy
type Config struct {
	// Timeout bounds a single fetch attempt
	Timeout time.Duration

	// MaxAttempts is the total number of fetch attempts, including the first
	MaxAttempts int

	// RetryDelay is the wait between attempts
	RetryDelay time.Duration

	// UserAgent identifies the client; sites reject unidentified ones
	UserAgent string
}

// DefaultConfig returns the production scrape policy
func DefaultConfig() Config {
	return Config{
		Timeout:     15 * time.Second,
		MaxAttempts: 3,
		RetryDelay:  1 * time.Second,
		UserAgent:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// WebsiteScraper fetches a URL and extracts a text snippet from the response.
// Real-world sites are slow, partially broken, or serve non-standard markup;
// the scraper converts every failure into an outcome value instead of
// propagating it.
type WebsiteScraper struct {
	deps      interfaces.Dependencies
	extractor *ContentExtractor
	cfg       Config
}

// NewWebsiteScraper creates a new website scraper
func NewWebsiteScraper(deps interfaces.Dependencies, cfg Config) *WebsiteScraper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultConfig().RetryDelay
	}

	return &WebsiteScraper{
		deps:      deps,
		extractor: NewContentExtractor(),
		cfg:       cfg,
	}
}

// Scrape fetches rawURL and returns the outcome. Timeouts and connection
// resets are retried up to MaxAttempts with RetryDelay in between; they are
// often transient load issues on the remote site. Every other failure class
// (DNS, HTTP status, TLS, malformed content) is deterministic, so it aborts
// immediately rather than waste the time budget.
func (s *WebsiteScraper) Scrape(ctx context.Context, rawURL string) domain.ScrapeOutcome {
	targetURL := NormalizeURL(rawURL)

	if cached := s.cachedSnippet(ctx, targetURL); cached != "" {
		return domain.ScrapeSuccess(cached)
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(s.cfg.RetryDelay):
			case <-ctx.Done():
				return domain.ScrapeFailure(ctx.Err().Error())
			}
		}

		snippet, retryable, err := s.attempt(ctx, targetURL)
		if err == nil {
			s.cacheSnippet(ctx, targetURL, snippet)
			return domain.ScrapeSuccess(snippet)
		}

		lastErr = err
		if !retryable {
			break
		}
	}

	s.logFailure(targetURL, lastErr)
	return domain.ScrapeFailure(lastErr.Error())
}

// attempt performs one fetch-and-extract cycle. The second return value
// reports whether the failure class is worth retrying.
func (s *WebsiteScraper) attempt(ctx context.Context, targetURL string) (string, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(attemptCtx, targetURL)
	if err != nil {
		return "", isRetryable(err), err
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return "", false, fmt.Errorf("server returned status %d", resp.StatusCode())
	}

	reader, err := charset.NewReader(resp.Body(), resp.Header("Content-Type"))
	if err != nil {
		return "", false, fmt.Errorf("failed to decode response body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse page: %w", err)
	}

	return s.extractor.Extract(doc), false, nil
}

// isRetryable reports whether err is a timeout or connection-class network
// failure. DNS, TLS, and protocol errors are deterministic and excluded.
func isRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return false
	}

	var syscallErr *os.SyscallError
	if errors.As(err, &syscallErr) {
		return syscallErr.Err == syscall.ECONNREFUSED ||
			syscallErr.Err == syscall.ECONNRESET ||
			syscallErr.Err == syscall.EPIPE
	}

	// Connection dropped mid-response
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	return false
}

// NormalizeURL prepends a secure scheme when the URL has none
func NormalizeURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}

// cachedSnippet returns a previously extracted snippet for targetURL, or ""
func (s *WebsiteScraper) cachedSnippet(ctx context.Context, targetURL string) string {
	if s.deps.Cache == nil {
		return ""
	}
	data, err := s.deps.Cache.Get(ctx, cacheKey(targetURL))
	if err != nil || len(data) == 0 {
		return ""
	}
	return string(data)
}

// cacheSnippet stores a successful snippet; failures are never cached so a
// site that recovers is scraped again next time
func (s *WebsiteScraper) cacheSnippet(ctx context.Context, targetURL, snippet string) {
	if s.deps.Cache == nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, cacheKey(targetURL), []byte(snippet), scrapeCacheTTL); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Failed to cache scraped snippet", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
	}
}

func (s *WebsiteScraper) logFailure(targetURL string, err error) {
	if s.deps.Logger == nil || err == nil {
		return
	}
	s.deps.Logger.Warn("Website scrape failed", map[string]interface{}{
		"url":   targetURL,
		"error": err.Error(),
	})
}

// cacheKey hashes the URL so arbitrary characters never leak into key space
func cacheKey(targetURL string) string {
	sum := sha256.Sum256([]byte(targetURL))
	return scrapeCachePrefix + hex.EncodeToString(sum[:])
}
