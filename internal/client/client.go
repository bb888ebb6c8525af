// Package client talks to the back-office backend over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/backoffice/internal/backoffice"
)

const defaultTimeout = 30 * time.Second

// Client implements the dashboard backend contract against the REST API.
type Client struct {
	baseURL string
	client  *http.Client
	token   string
}

type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) ListEvents(ctx context.Context) ([]backoffice.Event, error) {
	var events []backoffice.Event
	if err := c.getJSON(ctx, "/events", nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *Client) ListPurchaseOrders(ctx context.Context) ([]backoffice.PurchaseOrder, error) {
	var purchases []backoffice.PurchaseOrder
	if err := c.getJSON(ctx, "/purchase_orders", nil, &purchases); err != nil {
		return nil, err
	}

	return purchases, nil
}

func (c *Client) ListSuggestions(ctx context.Context, limit int) ([]backoffice.Suggestion, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var suggestions []backoffice.Suggestion
	if err := c.getJSON(ctx, "/agents/suggestions", query, &suggestions); err != nil {
		return nil, err
	}

	return suggestions, nil
}

// ApproveSuggestion approves suggestion id. It returns nil when the backend
// answers without a body.
func (c *Client) ApproveSuggestion(ctx context.Context, id int64) (*backoffice.Approval, error) {
	path := fmt.Sprintf("/agents/suggestions/%d/approve", id)

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var approval backoffice.Approval

	found, err := c.do(req, path, &approval)
	if err != nil || !found {
		return nil, err
	}

	return &approval, nil
}

func (c *Client) SearchDocuments(ctx context.Context, query string) ([]backoffice.SearchResult, error) {
	var results []backoffice.SearchResult
	if err := c.getJSON(ctx, "/search/documents", url.Values{"query": {query}}, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// IngestPurchase uploads one document for llcName as a multipart form.
func (c *Client) IngestPurchase(ctx context.Context, llcName, filename string, body io.Reader) (*backoffice.IngestResult, error) {
	const path = "/ingest/purchase"

	var buf bytes.Buffer

	form := multipart.NewWriter(&buf)

	if err := form.WriteField("llc_name", llcName); err != nil {
		return nil, fmt.Errorf("writing form field: %w", err)
	}

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	if _, err := io.Copy(part, body); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", form.FormDataContentType())

	var result backoffice.IngestResult

	found, err := c.do(req, path, &result)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, &Error{Status: http.StatusNoContent, Message: "ingestion returned no purchase order"}
	}

	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}

	_, err = c.do(req, path, out)

	return err
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// do executes req and decodes a successful JSON body into out. It reports
// false when the backend answered 204 No Content.
func (c *Client) do(req *http.Request, path string, out any) (bool, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, newError(resp, path)
	}

	if resp.StatusCode == http.StatusNoContent {
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return false, nil
		}

		return false, fmt.Errorf("decoding response from %s: %w", path, err)
	}

	return true, nil
}
