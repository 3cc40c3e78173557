package torii

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/QuentinI/iroha-go-sdk/pkg/crypto"
	"github.com/QuentinI/iroha-go-sdk/pkg/logging"
	"github.com/QuentinI/iroha-go-sdk/pkg/query"
	"github.com/QuentinI/iroha-go-sdk/pkg/tx"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
	MaxRetries uint64
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
	maxRetries uint64
	logger     zerolog.Logger
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		network := strings.ToLower(strings.TrimSpace(config.Network))
		switch network {
		case NetworkLocal, "":
			baseURL = "http://127.0.0.1:8080"
		case NetworkTestnet:
			baseURL = "https://testnet.torii.iroha.tech"
		case NetworkMainnet:
			baseURL = "https://torii.iroha.tech"
		default:
			return nil, fmt.Errorf("unsupported network %q", config.Network)
		}
	}

	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid torii base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid torii base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid torii base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	maxRetries := config.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
		maxRetries: maxRetries,
		logger:     logging.With("torii"),
	}, nil
}

// BaseURL returns the validated base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitTransaction posts a signed transaction to the peer and returns its
// hash. The peer acknowledges acceptance into its queue; commitment is
// observed separately through the event stream.
func (c *Client) SubmitTransaction(
	ctx context.Context,
	transaction *tx.Transaction,
) (crypto.Hash, error) {
	if transaction == nil {
		return crypto.Hash{}, fmt.Errorf("transaction is required")
	}
	if err := transaction.VerifySignatures(); err != nil {
		return crypto.Hash{}, err
	}

	hash, err := transaction.Hash()
	if err != nil {
		return crypto.Hash{}, err
	}

	var response submitResponse
	if err := c.postJSON(ctx, "/transaction", transaction, &response); err != nil {
		return crypto.Hash{}, err
	}

	// A peer that echoes the hash must agree with ours.
	if response.Hash != "" && response.Hash != hash.String() {
		return crypto.Hash{}, fmt.Errorf(
			"peer reported hash %s for transaction %s", response.Hash, hash,
		)
	}

	c.logger.Debug().
		Str("hash", hash.String()).
		Int("instructions", len(transaction.Payload.Instructions)).
		Msg("transaction submitted")

	return hash, nil
}

// SubmitQuery posts a signed query and returns the raw result payload.
func (c *Client) SubmitQuery(
	ctx context.Context,
	request query.Request,
) (json.RawMessage, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var result json.RawMessage
	if err := c.postJSON(ctx, "/query", request, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Health checks the peer's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	var response healthResponse
	if err := c.getJSON(ctx, "/health", &response); err != nil {
		return err
	}
	if !strings.EqualFold(response.Status, "healthy") {
		return fmt.Errorf("peer is not healthy: %s", response.Status)
	}
	return nil
}

// Status fetches the peer's status counters.
func (c *Client) Status(ctx context.Context) (Status, error) {
	var status Status
	if err := c.getJSON(ctx, "/status", &status); err != nil {
		return Status{}, err
	}
	return status, nil
}

// PendingTransactions lists transactions queued on the peer.
func (c *Client) PendingTransactions(ctx context.Context) ([]PendingTransaction, error) {
	var response pendingTransactionsResponse
	if err := c.getJSON(ctx, "/pending_transactions", &response); err != nil {
		return nil, err
	}
	return response.Transactions, nil
}

// getJSON performs a GET with retries; transient failures back off
// exponentially up to the configured retry budget. Client errors (4xx) are
// not retried.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	operation := func() error {
		err := c.doJSON(ctx, http.MethodGet, path, nil, target)
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code < 500 {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)
	return backoff.Retry(operation, policy)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, target any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.doJSON(ctx, http.MethodPost, path, encoded, target)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body []byte, target any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "br")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("torii request failed: %w", err)
	}
	defer response.Body.Close()

	responseBody := io.Reader(response.Body)
	if strings.EqualFold(response.Header.Get("Content-Encoding"), "br") {
		responseBody = brotli.NewReader(response.Body)
	}

	decoded, err := io.ReadAll(responseBody)
	if err != nil {
		return fmt.Errorf("failed to read torii response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return c.statusError(response.StatusCode, decoded)
	}

	if target == nil || len(decoded) == 0 {
		return nil
	}
	if err := json.Unmarshal(decoded, target); err != nil {
		return fmt.Errorf("failed to decode torii response: %w", err)
	}
	return nil
}

// StatusError is a non-2xx response from the peer, carrying the rejection
// reason when the peer provides one.
type StatusError struct {
	Code    int
	Message string
	Reason  string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("torii request failed with status %d: %s (%s)", e.Code, e.Message, e.Reason)
	}
	return fmt.Sprintf("torii request failed with status %d: %s", e.Code, e.Message)
}

func (c *Client) statusError(statusCode int, body []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return &StatusError{Code: statusCode, Message: parsed.Message, Reason: parsed.Reason}
	}
	return &StatusError{Code: statusCode, Message: strings.TrimSpace(string(body))}
}
