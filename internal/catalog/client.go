// Package catalog talks to the remote catalog/order API that owns tenant
// configuration, product data and order intake. Nothing here is persisted
// locally beyond a short-lived response cache.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"vitrine/internal/domain"
)

const websiteCacheTTL = 60 * time.Second

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	cache map[string]cachedSite
}

type cachedSite struct {
	data    *domain.PublicWebsiteData
	fetched time.Time
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   make(map[string]cachedSite),
	}
}

// WebsiteData fetches tenant config, products and categories by slug.
// Responses are cached for a minute; an unknown slug returns (nil, nil).
func (c *Client) WebsiteData(ctx context.Context, slug string) (*domain.PublicWebsiteData, error) {
	c.mu.Lock()
	if hit, ok := c.cache[slug]; ok && time.Since(hit.fetched) < websiteCacheTTL {
		c.mu.Unlock()
		return hit.data, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ecommerce/public/"+slug, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch website data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.store(slug, nil)
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch website data: unexpected status %d", resp.StatusCode)
	}

	var data domain.PublicWebsiteData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode website data: %w", err)
	}
	c.store(slug, &data)
	return &data, nil
}

func (c *Client) store(slug string, data *domain.PublicWebsiteData) {
	c.mu.Lock()
	c.cache[slug] = cachedSite{data: data, fetched: time.Now()}
	c.mu.Unlock()
}

// Product fetches a single product. Any non-2xx response is treated as
// "product gone" rather than an error, matching how the store renders a
// friendly not-found page for unavailable items.
func (c *Client) Product(ctx context.Context, slug, productID string) (*domain.WebsiteProduct, error) {
	url := c.baseURL + "/ecommerce/public/" + slug + "/products/" + productID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch product: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil
	}

	var body struct {
		Product *domain.WebsiteProduct `json:"product"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}
	return body.Product, nil
}

// CreateOrder submits the checkout payload for a tenant. Non-2xx responses
// surface the API's error message so the shopper can retry; the caller must
// not clear the cart unless this returns successfully.
func (c *Client) CreateOrder(ctx context.Context, companyID string, order domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/ecommerce/orders/" + companyID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("create order: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("create order: unexpected status %d", resp.StatusCode)
	}

	var out domain.CreateOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	return &out, nil
}
