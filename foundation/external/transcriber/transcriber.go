// Package transcriber is the HTTP client for the external speech-to-text
// provider. The provider's internals are opaque; this client only fetches a
// transcript for an audio reference.
package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	apiTimeout     = 15 * time.Second
	maxElapsedTime = 45 * time.Second
)

type Client struct {
	apiEndpoint string
	apiKey      string
	client      http.Client
}

func New(apiEndpoint string, apiKey string) *Client {
	return &Client{
		apiEndpoint: apiEndpoint,
		apiKey:      apiKey,
		client:      http.Client{Timeout: apiTimeout},
	}
}

// Enabled reports whether a provider endpoint is configured.
func (c *Client) Enabled() bool {
	return c.apiEndpoint != ""
}

// Transcribe fetches the transcript for audioURL, retrying transient
// failures with exponential backoff. Client errors are not retried.
func (c *Client) Transcribe(ctx context.Context, audioURL string) (Result, error) {
	var result Result

	operation := func() error {
		r, err := c.transcribeOnce(ctx, audioURL)
		if err != nil {
			return err
		}
		result = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxElapsedTime

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return Result{}, fmt.Errorf("transcriber: %w", err)
	}

	return result, nil
}

func (c *Client) transcribeOnce(ctx context.Context, audioURL string) (Result, error) {
	params := url.Values{}
	params.Add("audio_url", audioURL)

	payload := strings.NewReader(params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiEndpoint, payload)
	if err != nil {
		return Result{}, backoff.Permanent(err)
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	if c.apiKey != "" {
		req.Header.Add("api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return Result{}, fmt.Errorf("provider error %d: %s", resp.StatusCode, string(bytes))
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, backoff.Permanent(fmt.Errorf("provider rejected request %d: %s", resp.StatusCode, string(bytes)))
	}

	var r Result
	if err := json.Unmarshal(bytes, &r); err != nil {
		return Result{}, backoff.Permanent(err)
	}

	return r, nil
}
