package clientservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client HTTP client for the client registry service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a client registry service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FindByPhone looks up a registered client by phone number
func (c *Client) FindByPhone(ctx context.Context, phone string) (*RegisteredClient, error) {
	reqURL := fmt.Sprintf("%s/internal/clients/by-phone/%s", c.baseURL, url.PathEscape(phone))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid phone format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrClientNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var client RegisteredClient
	if err := json.NewDecoder(resp.Body).Decode(&client); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &client, nil
}

// FindByPhoneWithGracefulDegradation looks up a registered client and
// degrades gracefully when the registry is unreachable. Not-found is a
// normal outcome (walk-in clients book without being registered); any
// other failure yields ErrServiceDegraded so the booking can proceed on
// snapshot fields alone.
func (c *Client) FindByPhoneWithGracefulDegradation(ctx context.Context, phone string) (*RegisteredClient, error) {
	c.log.Info("Looking up registered client for phone=%s", phone)

	client, err := c.FindByPhone(ctx, phone)
	if err != nil {
		if err == ErrClientNotFound {
			c.log.Info("No registered client for phone=%s", phone)
			return nil, err
		}

		c.log.Error("ClientService unavailable, applying graceful degradation for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: phone=%s, error=%v", ErrServiceDegraded, phone, err)
	}

	c.log.Info("Found registered client id=%d for phone=%s", client.ID, phone)
	return client, nil
}
