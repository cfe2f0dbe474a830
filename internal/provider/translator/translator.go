// Package translator is a client for the Microsoft Translator text API
// served through the RapidAPI gateway.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"vocaquiz/internal/domain"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the RapidAPI endpoint of the translator
	DefaultBaseURL = "https://microsoft-translator-text-api3.p.rapidapi.com"
	rapidAPIHost   = "microsoft-translator-text-api3.p.rapidapi.com"
	apiVersion     = "3.0"
)

// Client translates texts in batches
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a translator client
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With(zap.String("adapter", "translator")),
	}
}

type requestItem struct {
	Text string `json:"Text"`
}

type responseItem struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Translate sends all texts in one request and returns the first translation
// of each, in request order
func (c *Client) Translate(ctx context.Context, texts []string, from, to domain.Language) ([]string, error) {
	items := make([]requestItem, len(texts))
	for i, text := range texts {
		items[i] = requestItem{Text: text}
	}

	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("translator: encode request: %w", err)
	}

	params := url.Values{}
	params.Set("to", string(to))
	params.Set("from", string(from))
	params.Set("textType", "plain")
	params.Set("api-version", apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate?"+params.Encode(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("translator: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)

	c.logger.Debug("Translator request",
		zap.Int("texts", len(texts)),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translator: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("translator: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translator: unexpected status %d: %s", resp.StatusCode, truncate(respBody, 200))
	}

	var result []responseItem
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("translator: decode json: %w", err)
	}

	translated := make([]string, len(result))
	for i, item := range result {
		if len(item.Translations) == 0 {
			return nil, fmt.Errorf("translator: no translations for item %d", i)
		}
		translated[i] = item.Translations[0].Text
	}

	return translated, nil
}

// truncate shortens b to at most n bytes without splitting a rune
func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n]) + "..."
}
