// Package listclient is the to-do list client: it fetches the collection,
// keeps a typed view of it, and submits create, toggle and remove requests.
//
// Every mutation is followed by an explicit reload of the whole list, which
// is the only reconciliation between the view and the backend.
package listclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"todolist/internal/generated/openapi"
	"todolist/internal/log"
	"todolist/models"
)

// Entry is one rendered list row.
type Entry struct {
	Item  models.Item
	Index int // 1-based position in the list

	HasDoneControl   bool
	HasRemoveControl bool
}

// Class is the visual marker of the row: "done" for finished items.
func (e Entry) Class() string {
	if e.Item.Done {
		return "done"
	}
	return ""
}

// Client is the explicit client context shared by all handlers.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	revision   Revision

	mu      sync.Mutex
	entries []Entry
}

type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRevision pins the API revision; the latest is used otherwise.
func WithRevision(r Revision) Option {
	return func(c *Client) { c.revision = r }
}

// New returns a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("server url needs a scheme and host: " + baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		revision:   Latest,
	}
	for _, opt := range opts {
		opt(c)
	}
	if _, err := ParseRevision(int(c.revision)); err != nil {
		return nil, err
	}
	return c, nil
}

// Revision reports the API revision in use.
func (c *Client) Revision() Revision { return c.revision }

// Entries returns the current view.
func (c *Client) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Load fetches the whole collection and replaces the view with one entry per
// item, in response order. On failure the previous view is kept.
func (c *Client) Load(ctx context.Context) ([]Entry, error) {
	resp, err := c.do(ctx, c.revision.listEndpoint(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var items []models.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{
			Item:             item,
			Index:            i + 1,
			HasDoneControl:   c.revision.HasDoneControl(),
			HasRemoveControl: c.revision.HasRemoveControl(),
		}
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()

	return c.Entries(), nil
}

// KeyPress handles a key delivered to the name field. Only Enter submits;
// anything else is a no-op without network traffic.
func (c *Client) KeyPress(ctx context.Context, key, value string) error {
	if !strings.EqualFold(key, "enter") {
		return nil
	}
	return c.Create(ctx, value)
}

// Create submits name unvalidated, then reloads.
func (c *Client) Create(ctx context.Context, name string) error {
	err := c.send(ctx, c.revision.createEndpoint(), openapi.NewItem{Name: name})
	return c.reload(ctx, err)
}

// ToggleDone submits the negation of the entry's cached Done flag, then
// reloads. The cached flag is not re-read from the backend first.
func (c *Client) ToggleDone(ctx context.Context, e Entry) error {
	if !c.revision.HasDoneControl() {
		return ErrUnsupported
	}
	err := c.send(ctx, c.revision.updateEndpoint(e.Item.UUID), openapi.UpdateItem{Done: !e.Item.Done})
	return c.reload(ctx, err)
}

// RemoveItem deletes the entry's item, then reloads.
func (c *Client) RemoveItem(ctx context.Context, e Entry) error {
	if !c.revision.HasRemoveControl() {
		return ErrUnsupported
	}
	err := c.send(ctx, c.revision.deleteEndpoint(e.Item.UUID), nil)
	return c.reload(ctx, err)
}

// Find resolves a 1-based index or a UUID against the current view.
func (c *Client) Find(ref string) (Entry, error) {
	ref = strings.TrimSpace(ref)
	entries := c.Entries()

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(entries) {
			return Entry{}, notFoundError{ref: ref}
		}
		return entries[n-1], nil
	}
	for _, e := range entries {
		if e.Item.UUID == ref {
			return e, nil
		}
	}
	return Entry{}, notFoundError{ref: ref}
}

// reload re-fetches the list whatever the outcome of the mutation was.
func (c *Client) reload(ctx context.Context, mutationErr error) error {
	_, err := c.Load(ctx)
	return errors.Join(mutationErr, err)
}

func (c *Client) send(ctx context.Context, ep endpoint, body any) error {
	resp, err := c.do(ctx, ep, body)
	if err != nil {
		return err
	}
	// The response body is not used.
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (c *Client) do(ctx context.Context, ep endpoint, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, c.baseURL.JoinPath(ep.path).String(), rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().Str("method", ep.method).Str("path", ep.path).Msg("request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{Method: ep.method, Path: ep.path, Code: resp.StatusCode}
	}
	return resp, nil
}
