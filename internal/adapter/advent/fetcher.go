// Package advent downloads puzzle statements and inputs from adventofcode.com.
package advent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gitlab.com/aockit-2025.net/internal/config"
	"gitlab.com/aockit-2025.net/internal/core/ports/primary"
	"gitlab.com/aockit-2025.net/internal/core/ports/secondary"
	"gitlab.com/aockit-2025.net/internal/static/errs"
)

var _ secondary.PuzzleFetcher = (*Fetcher)(nil)

// Fetcher implements the PuzzleFetcher port against the real puzzle site,
// authenticating with the user's session cookie.
type Fetcher struct {
	cfg    *config.FetchConfig
	client *http.Client
	logger primary.Logger
}

func NewFetcher(cfg *config.FetchConfig, logger primary.Logger) (*Fetcher, error) {
	if cfg.SessionCookie == "" {
		return nil, errs.CookieMissing
	}
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}, nil
}

func (f *Fetcher) statementRoute(year, day int) string {
	return fmt.Sprintf("/%d/day/%d", year, day)
}

func (f *Fetcher) fetchURL(ctx context.Context, route string) (string, error) {
	url := fmt.Sprintf("https://%s%s", f.cfg.Host, route)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Cookie", fmt.Sprintf("session=%s", f.cfg.SessionCookie))
	req.Header.Set("User-Agent", f.cfg.UserAgent)

	res, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		f.logger.Warn("Fetch rejected", "url", url, "status", res.StatusCode)
		return "", fmt.Errorf("%w (status %d)", errs.FetchFailed, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return string(body), nil
}

// FetchStatement downloads the statement page for (year, day) and extracts
// the readable statement text, its title and any confirmed answers.
func (f *Fetcher) FetchStatement(ctx context.Context, year, day int) (*secondary.StatementPage, error) {
	route := f.statementRoute(year, day)
	body, err := f.fetchURL(ctx, route)
	if err != nil {
		return nil, err
	}

	statement, title, pt1, pt2, err := parseStatementPage(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse statement for %d day %d: %w", year, day, err)
	}

	return &secondary.StatementPage{
		URL:       fmt.Sprintf("https://%s%s", f.cfg.Host, route),
		Statement: statement,
		Title:     title,
		Pt1Answer: pt1,
		Pt2Answer: pt2,
	}, nil
}

// FetchInput downloads the raw puzzle input for (year, day).
func (f *Fetcher) FetchInput(ctx context.Context, year, day int) (string, error) {
	return f.fetchURL(ctx, f.statementRoute(year, day)+"/input")
}

// wrapText re-wraps each line of text at the given width, keeping words whole.
func wrapText(text string, width int) string {
	lines := strings.Split(text, "\n")
	wrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			wrapped = append(wrapped, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				wrapped = append(wrapped, current)
				current = word
				continue
			}
			current += " " + word
		}
		wrapped = append(wrapped, current)
	}
	return strings.Join(wrapped, "\n")
}
