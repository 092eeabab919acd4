package customerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the hub customer service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a customer service client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FindByEmail looks up the hub's customer record by email address.
func (c *Client) FindByEmail(ctx context.Context, hubID int64, email string) (*Customer, error) {
	endpoint := fmt.Sprintf("%s/internal/hubs/%d/customers/by-email?email=%s",
		c.baseURL, hubID, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
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
		return nil, fmt.Errorf("%w: invalid email lookup", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var customer Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &customer, nil
}

// FindByEmailWithGracefulDegradation looks up a customer and downgrades
// transport failures to ErrServiceDegraded. A booking is still created
// without a customer link when the service is down; only a definite
// "no such customer" answer is passed through as ErrCustomerNotFound.
func (c *Client) FindByEmailWithGracefulDegradation(ctx context.Context, hubID int64, email string) (*Customer, error) {
	c.log.Info("Looking up customer by email for hub_id=%d", hubID)

	customer, err := c.FindByEmail(ctx, hubID, email)
	if err != nil {
		if err == ErrCustomerNotFound {
			c.log.Info("No customer record matches email for hub_id=%d", hubID)
			return nil, err
		}

		c.log.Error("Customer service unavailable, applying graceful degradation for hub_id=%d: %v", hubID, err)
		return nil, fmt.Errorf("%w: hub_id=%d, error=%v", ErrServiceDegraded, hubID, err)
	}

	c.log.Info("Matched customer %s for hub_id=%d", customer.ID, hubID)
	return customer, nil
}
