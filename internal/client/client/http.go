package client

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
	"sync"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// HTTPClient talks to the inventory API over REST/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API rooted at baseURL. timeout
// bounds every request; zero means no limit.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// SetToken sets the bearer token sent with every request. An empty token
// disables the Authorization header.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &u); err != nil {
		return models.User{}, err
	}
	if u.ID == "" {
		return models.User{}, fmt.Errorf("%w: login response without user id", ErrMalformedResponse)
	}
	return u, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, http.MethodPost, "/api/register", reg, nil)
}

func (c *HTTPClient) Products(ctx context.Context, userID string) ([]models.Product, error) {
	var out []models.Product
	err := c.do(ctx, http.MethodGet, "/api/product/get/"+url.PathEscape(userID), nil, &out)
	return out, err
}

// AddProduct creates a product. The API answers with the created product;
// a body that is not one is reported as ErrMalformedResponse.
func (c *HTTPClient) AddProduct(ctx context.Context, in models.ProductInput) error {
	var created models.Product
	return c.do(ctx, http.MethodPost, "/api/product/add", in, &created)
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, in models.ProductInput) error {
	return c.do(ctx, http.MethodPut, "/api/product/update/"+url.PathEscape(id), in, nil)
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/product/delete/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Purchases(ctx context.Context, userID string) ([]models.Purchase, error) {
	var out []models.Purchase
	err := c.do(ctx, http.MethodGet, "/api/purchase/get/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *HTTPClient) AddPurchase(ctx context.Context, in models.PurchaseInput) error {
	var created models.Purchase
	return c.do(ctx, http.MethodPost, "/api/purchase/add", in, &created)
}

func (c *HTTPClient) Sales(ctx context.Context, userID string) ([]models.Sale, error) {
	var out []models.Sale
	err := c.do(ctx, http.MethodGet, "/api/sales/get/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *HTTPClient) AddSale(ctx context.Context, in models.SaleInput) error {
	var created models.Sale
	return c.do(ctx, http.MethodPost, "/api/sales/add", in, &created)
}

func (c *HTTPClient) Stores(ctx context.Context, userID string) ([]models.Store, error) {
	var out []models.Store
	err := c.do(ctx, http.MethodGet, "/api/store/get/"+url.PathEscape(userID), nil, &out)
	return out, err
}

func (c *HTTPClient) AddStore(ctx context.Context, in models.StoreInput) error {
	var created models.Store
	return c.do(ctx, http.MethodPost, "/api/store/add", in, &created)
}

func (c *HTTPClient) UpdateStore(ctx context.Context, id string, in models.StoreInput) error {
	return c.do(ctx, http.MethodPut, "/api/store/update/"+url.PathEscape(id), in, nil)
}

func (c *HTTPClient) DeleteStore(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/store/delete/"+url.PathEscape(id), nil, nil)
}

// do sends body as JSON and decodes a 2xx response into out. With a nil out
// the response body is ignored, as for updates and deletes.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}
	return nil
}

func mapStatus(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(b, &payload)

	apiErr := &APIError{Status: resp.StatusCode, Message: payload.Message}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w", ErrUnavailable, apiErr)
	default:
		return apiErr
	}
}
