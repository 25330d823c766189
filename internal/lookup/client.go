package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/csheth/partscout/internal/logger"
)

const (
	maxBodyBytes    = 4 << 20
	requestIDHeader = "X-Request-ID"
)

// Options configures a Client.
type Options struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client talks to the part lookup backend.
type Client struct {
	endpoint string
	http     *http.Client
	log      *logger.Logger
	newID    func() string
}

// New validates the endpoint and builds a Client. A zero Timeout leaves
// requests bounded only by their context.
func New(opts Options) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/")
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", opts.Endpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be http or https", opts.Endpoint)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		log:      log.WithComponent("lookup"),
		newID:    newRequestID,
	}, nil
}

// Endpoint returns the base URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type searchRequest struct {
	PartNumber string `json:"part_number"`
}

type searchEnvelope struct {
	Response
	Error string `json:"error"`
}

// Search sends exactly one POST for q to the catalog's endpoint.
func (c *Client) Search(ctx context.Context, catalog Catalog, q Query) (*Response, error) {
	if strings.TrimSpace(q.PartNumber) == "" {
		return nil, ErrEmptyQuery
	}
	payload, err := json.Marshal(searchRequest{PartNumber: q.PartNumber})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+catalog.Path(), bytes.NewReader(payload))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	requestID := c.newID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnWithFields("search request failed", []logger.Field{
			logger.F("request_id", requestID), logger.F("catalog", catalog), logger.Err(err),
		})
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}
	c.log.InfoWithFields("search completed", []logger.Field{
		logger.F("request_id", requestID),
		logger.F("catalog", catalog),
		logger.F("part", q.PartNumber),
		logger.F("status", resp.StatusCode),
		logger.Duration(time.Since(started)),
	})

	var envelope searchEnvelope
	decodeErr := json.Unmarshal(body, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := GenericErrorMessage
		if decodeErr == nil && strings.TrimSpace(envelope.Error) != "" {
			message = envelope.Error
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: message}
	}
	if decodeErr != nil {
		return nil, &NetworkError{Err: fmt.Errorf("decode response: %w", decodeErr), Message: InvalidResponseMessage}
	}
	return &envelope.Response, nil
}

// Health probes GET /health and expects {"status": "ok"}.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("health check failed: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}
	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&parsed); err != nil {
		return &NetworkError{Err: fmt.Errorf("decode health response: %w", err), Message: InvalidResponseMessage}
	}
	if !strings.EqualFold(parsed.Status, "ok") {
		return fmt.Errorf("health check reported status %q", parsed.Status)
	}
	return nil
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
