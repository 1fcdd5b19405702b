package api

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

	"todocli/internal/model"
)

// Client talks to a todo REST backend. It is the only place that knows
// the wire protocol; everything above it deals in model.Item.
//
// No retries and no per-call deadlines: a failed call surfaces as one
// of the errors in errors.go and the caller decides what to do.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Patch is the subset of mutable fields sent on update. Nil fields are
// omitted from the request body.
type Patch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// List fetches the full collection in server order.
func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/todos", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrLoadFailed, err)
	}
	var items []model.Item
	if err := c.do(req, ErrLoadFailed, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Create posts a new record; the server assigns the identifier.
func (c *Client) Create(ctx context.Context, title string) (model.Item, error) {
	body := struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}{Title: title}
	req, err := c.jsonRequest(ctx, http.MethodPost, c.baseURL+"/todos", body)
	if err != nil {
		return model.Item{}, fmt.Errorf("%w: build request: %v", ErrCreateFailed, err)
	}
	var created model.Item
	if err := c.do(req, ErrCreateFailed, &created); err != nil {
		return model.Item{}, err
	}
	return created, nil
}

// Update patches a subset of fields and returns the server's copy of
// the whole record.
func (c *Client) Update(ctx context.Context, id model.ID, p Patch) (model.Item, error) {
	req, err := c.jsonRequest(ctx, http.MethodPatch, c.itemURL(id), p)
	if err != nil {
		return model.Item{}, fmt.Errorf("%w: build request: %v", ErrUpdateFailed, err)
	}
	var updated model.Item
	if err := c.do(req, ErrUpdateFailed, &updated); err != nil {
		return model.Item{}, err
	}
	return updated, nil
}

// Remove deletes a record. The response body, if any, is ignored.
func (c *Client) Remove(ctx context.Context, id model.ID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.itemURL(id), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrDeleteFailed, err)
	}
	return c.do(req, ErrDeleteFailed, nil)
}

func (c *Client) itemURL(id model.ID) string {
	return c.baseURL + "/todos/" + url.PathEscape(id.String())
}

func (c *Client) jsonRequest(ctx context.Context, method, u string, body any) (*http.Request, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do runs the request, maps any failure to sentinel, and decodes the
// body into out when out is non-nil.
func (c *Client) do(req *http.Request, sentinel error, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status %d", sentinel, resp.StatusCode)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", sentinel, err)
	}
	return nil
}
