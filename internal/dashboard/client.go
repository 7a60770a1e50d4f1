package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Skotchmaster/order_management/internal/transport"
)

// ErrFetchFailed covers every way a listing request can fail: transport
// error, non-200 status or an undecodable body.
var ErrFetchFailed = errors.New("failed to load data")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *Client) FetchOrders(ctx context.Context) ([]transport.OrderResponse, error) {
	var out []transport.OrderResponse
	if err := c.getJSON(ctx, "/orders/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchProducts(ctx context.Context) ([]transport.ProductResponse, error) {
	var out []transport.ProductResponse
	if err := c.getJSON(ctx, "/products/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: do request: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s returned status %d", ErrFetchFailed, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrFetchFailed, err)
	}
	return nil
}
