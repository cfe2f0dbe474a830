// Package voicerss is a client for the VoiceRSS text-to-speech API served
// through the RapidAPI gateway.
package voicerss

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the RapidAPI endpoint of VoiceRSS
	DefaultBaseURL = "https://voicerss-text-to-speech.p.rapidapi.com"
	rapidAPIHost   = "voicerss-text-to-speech.p.rapidapi.com"

	rate   = "0"
	codec  = "mp3"
	format = "8khz_8bit_mono"
)

// Client synthesizes speech
type Client struct {
	baseURL    string
	apiKey     string
	rapidKey   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a VoiceRSS client. apiKey is the VoiceRSS key,
// rapidKey authenticates against the gateway.
func NewClient(baseURL, apiKey, rapidKey string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		rapidKey:   rapidKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With(zap.String("adapter", "voicerss")),
	}
}

// FormValues returns the request form for text spoken with the locale voice
func FormValues(text, locale string) url.Values {
	form := url.Values{}
	form.Set("src", text)
	form.Set("r", rate)
	form.Set("c", codec)
	form.Set("f", format)
	form.Set("b64", "true")
	form.Set("hl", locale)
	return form
}

// Synthesize returns the response body verbatim, a base64 encoded mp3
func (c *Client) Synthesize(ctx context.Context, text, locale string) (string, error) {
	reqURL := c.baseURL + "/?" + url.Values{"key": {c.apiKey}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(FormValues(text, locale).Encode()))
	if err != nil {
		return "", fmt.Errorf("voicerss: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-RapidAPI-Key", c.rapidKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)

	c.logger.Debug("VoiceRSS request", zap.String("text", text), zap.String("locale", locale))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("voicerss: request failed: %w", stripURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("voicerss: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("voicerss: unexpected status %d", resp.StatusCode)
	}

	// VoiceRSS reports failures in a 200 body
	if strings.HasPrefix(string(body), "ERROR") {
		return "", fmt.Errorf("voicerss: %s", strings.TrimSpace(string(body)))
	}

	return string(body), nil
}

// stripURL drops the request URL, which carries the API key, from transport errors
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

// DecodeAudio decodes a base64 payload, with or without a data URI prefix
func DecodeAudio(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		if i := strings.Index(payload, ","); i >= 0 {
			payload = payload[i+1:]
		}
	}

	audio, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("voicerss: decode audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("voicerss: empty audio")
	}
	return audio, nil
}
