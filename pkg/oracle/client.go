// Package oracle provides an HTTP client for the generation bridge: the
// external service that turns assessment context into symptom catalogs,
// question sets, and final reports.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/opora-health/opora_backend/config"
)

var (
	ErrUnavailable = errors.New("oracle: generation service unreachable")
	ErrMalformed   = errors.New("oracle: generation service returned a non-conforming response")
)

// response bodies cap at 10 MiB, matching the bridge's own request limit
const maxBodyBytes = 10 << 20

// Client is a lightweight HTTP client for the generation bridge. Every call
// sends the accumulated context as JSON and expects a single JSON object
// back, possibly wrapped in markdown fences. Failures come back as typed
// errors; fallback policy belongs to the caller, not the client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	catalogTimeout  time.Duration
	questionTimeout time.Duration
	reportTimeout   time.Duration
	maxAttempts     uint
}

// New creates a Client from central config, applying call-weight defaults:
// short timeouts for catalog/variant lookups, long for report generation.
func New(cfg config.OracleConfig) *Client {
	c := &Client{
		baseURL:         cfg.BaseURL,
		apiKey:          cfg.APIKey,
		httpClient:      &http.Client{},
		catalogTimeout:  time.Duration(cfg.CatalogTimeoutSeconds) * time.Second,
		questionTimeout: time.Duration(cfg.QuestionTimeoutSeconds) * time.Second,
		reportTimeout:   time.Duration(cfg.ReportTimeoutSeconds) * time.Second,
		maxAttempts:     uint(cfg.MaxAttempts),
	}
	if c.catalogTimeout <= 0 {
		c.catalogTimeout = 10 * time.Second
	}
	if c.questionTimeout <= 0 {
		c.questionTimeout = 60 * time.Second
	}
	if c.reportTimeout <= 0 {
		c.reportTimeout = 2 * time.Minute
	}
	if c.maxAttempts == 0 {
		c.maxAttempts = 3
	}
	return c
}

type symptomsResponse struct {
	Symptoms []Symptom `json:"symptoms"`
}

type variantsResponse struct {
	Variants []string `json:"variants"`
}

type questionsResponse struct {
	Questions []Question `json:"questions"`
}

// SymptomCatalog fetches the catalog the user picks symptoms from.
func (c *Client) SymptomCatalog(ctx context.Context) ([]Symptom, error) {
	resp, err := call[symptomsResponse](ctx, c, http.MethodGet, "/api/get-symptoms", nil, c.catalogTimeout, c.maxAttempts)
	if err != nil {
		return nil, err
	}
	return resp.Symptoms, nil
}

// Variants turns an open-ended complaint into a short list of candidate
// first-person self-descriptions.
func (c *Client) Variants(ctx context.Context, complaint string) ([]string, error) {
	body := map[string]string{"complaint": complaint}
	resp, err := call[variantsResponse](ctx, c, http.MethodPost, "/api/generate-variants", body, c.catalogTimeout, c.maxAttempts)
	if err != nil {
		return nil, err
	}
	return resp.Variants, nil
}

// StageQuestions fetches the generated question set for stage 1 or 2,
// seeded with the accumulated context.
func (c *Client) StageQuestions(ctx context.Context, stage int, pc PromptContext) ([]Question, error) {
	if stage != 1 && stage != 2 {
		return nil, fmt.Errorf("oracle: no question endpoint for stage %d", stage)
	}
	path := fmt.Sprintf("/api/generate-part%d", stage)
	resp, err := call[questionsResponse](ctx, c, http.MethodPost, path, pc, c.questionTimeout, c.maxAttempts)
	if err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// FollowupQuestions fetches stage-3 hypothesis-driven candidates. An empty
// list is a legitimate outcome meaning no third stage is warranted.
func (c *Client) FollowupQuestions(ctx context.Context, pc PromptContext) ([]Question, error) {
	resp, err := call[questionsResponse](ctx, c, http.MethodPost, "/api/generate-part3", pc, c.questionTimeout, c.maxAttempts)
	if err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// GenerateReport produces the final document set. This is the heaviest
// generation task: it gets the long timeout and is never retried here,
// so a failed attempt surfaces immediately and the caller decides.
func (c *Client) GenerateReport(ctx context.Context, pc PromptContext) (Report, error) {
	return call[Report](ctx, c, http.MethodPost, "/api/generate-results", pc, c.reportTimeout, 1)
}

// call is the shared request combinator: one bounded attempt loop around
// roundTrip with exponential backoff on transient failures. Non-transient
// outcomes (4xx, malformed bodies) are permanent.
func call[T any](ctx context.Context, c *Client, method, path string, payload any, timeout time.Duration, attempts uint) (T, error) {
	op := func() (T, error) {
		return roundTrip[T](ctx, c, method, path, payload, timeout)
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(attempts),
	)
}

func roundTrip[T any](ctx context.Context, c *Client, method, path string, payload any, timeout time.Duration) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return zero, backoff.Permanent(fmt.Errorf("oracle: marshal request: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return zero, backoff.Permanent(fmt.Errorf("oracle: create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return zero, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	switch {
	case res.StatusCode >= 500:
		return zero, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	case res.StatusCode != http.StatusOK:
		return zero, backoff.Permanent(fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode))
	}

	out, err := decodeJSON[T](raw)
	if err != nil {
		return zero, backoff.Permanent(err)
	}
	return out, nil
}
