package listclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"todolist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// stubBackend answers GET /items with a fixed list and records every request.
type stubBackend struct {
	mu       sync.Mutex
	items    []models.Item
	requests []recordedRequest
	status   int // status for mutations, 0 means 200

	listStatus int // status for GET /items, 0 means 200
}

func (s *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	items := s.items
	status := s.status
	listStatus := s.listStatus
	s.mu.Unlock()

	if r.Method == http.MethodGet && r.URL.Path == "/items" {
		if listStatus != 0 {
			w.WriteHeader(listStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
		return
	}
	if status != 0 {
		w.WriteHeader(status)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *stubBackend) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

func (s *stubBackend) reset() {
	s.mu.Lock()
	s.requests = nil
	s.mu.Unlock()
}

func setupStub(t *testing.T, items []models.Item, opts ...Option) (*stubBackend, *Client) {
	stub := &stubBackend{items: items}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, append([]Option{WithHTTPClient(srv.Client())}, opts...)...)
	require.NoError(t, err)
	return stub, c
}

var sampleItems = []models.Item{
	{UUID: "0b6f0a5e-64a4-4a53-9a9e-3f1b9b2f4b10", Name: "Buy milk", Done: false},
	{UUID: "5d1f6c1a-8e8a-4c7b-a0a3-6b1e0b3f2c21", Name: "Walk dog", Done: true},
	{UUID: "9a7c3e2b-1d4f-4e6a-b8c9-0f2e4d6a8b32", Name: "Write report", Done: false},
}

func TestLoad_OneEntryPerItemInOrder(t *testing.T) {
	_, c := setupStub(t, sampleItems)

	entries, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, len(sampleItems))
	for i, e := range entries {
		assert.Equal(t, sampleItems[i], e.Item)
		assert.Equal(t, i+1, e.Index)
		assert.True(t, e.HasDoneControl)
		assert.True(t, e.HasRemoveControl)
	}
	assert.Equal(t, entries, c.Entries())
}

func TestLoad_DoneMarkerClass(t *testing.T) {
	_, c := setupStub(t, sampleItems)

	entries, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", entries[0].Class())
	assert.Equal(t, "done", entries[1].Class())
	assert.Equal(t, "", entries[2].Class())
}

func TestLoad_EmptyList(t *testing.T) {
	_, c := setupStub(t, []models.Item{})

	entries, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_FailureKeepsView(t *testing.T) {
	stub, c := setupStub(t, sampleItems)
	_, err := c.Load(context.Background())
	require.NoError(t, err)

	stub.mu.Lock()
	stub.listStatus = http.StatusInternalServerError
	stub.mu.Unlock()

	_, err = c.Load(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "/items", se.Path)
	assert.Len(t, c.Entries(), len(sampleItems))
}

func TestKeyPress_EnterCreatesThenReloads(t *testing.T) {
	stub, c := setupStub(t, sampleItems)

	require.NoError(t, c.KeyPress(context.Background(), "enter", "Buy milk"))

	reqs := stub.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/items/create", reqs[0].Path)
	assert.JSONEq(t, `{"Name":"Buy milk"}`, reqs[0].Body)
	assert.Equal(t, recordedRequest{Method: http.MethodGet, Path: "/items"}, reqs[1])
	assert.Len(t, c.Entries(), len(sampleItems))
}

func TestKeyPress_EmptyNameIsSubmitted(t *testing.T) {
	stub, c := setupStub(t, nil)

	require.NoError(t, c.KeyPress(context.Background(), "Enter", ""))

	reqs := stub.recorded()
	require.NotEmpty(t, reqs)
	assert.JSONEq(t, `{"Name":""}`, reqs[0].Body)
}

func TestKeyPress_OtherKeysDoNothing(t *testing.T) {
	stub, c := setupStub(t, sampleItems)

	for _, key := range []string{"a", "space", "tab", "esc", "shift+enter", ""} {
		require.NoError(t, c.KeyPress(context.Background(), key, "Buy milk"))
	}
	assert.Empty(t, stub.recorded())
}

func TestToggleDone_NegatesCachedFlag(t *testing.T) {
	stub, c := setupStub(t, sampleItems)
	entries, err := c.Load(context.Background())
	require.NoError(t, err)
	stub.reset()

	require.NoError(t, c.ToggleDone(context.Background(), entries[0]))

	reqs := stub.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/items/update/"+sampleItems[0].UUID, reqs[0].Path)
	assert.JSONEq(t, `{"Done":true}`, reqs[0].Body)
	assert.Equal(t, "/items", reqs[1].Path)

	stub.reset()
	require.NoError(t, c.ToggleDone(context.Background(), entries[1]))
	assert.JSONEq(t, `{"Done":false}`, stub.recorded()[0].Body)
}

func TestToggleDone_UsesStaleCache(t *testing.T) {
	stub, c := setupStub(t, sampleItems)
	entries, err := c.Load(context.Background())
	require.NoError(t, err)
	stub.reset()

	// Two toggles from the same cached entry both send the same value.
	require.NoError(t, c.ToggleDone(context.Background(), entries[0]))
	require.NoError(t, c.ToggleDone(context.Background(), entries[0]))

	reqs := stub.recorded()
	require.Len(t, reqs, 4)
	assert.JSONEq(t, `{"Done":true}`, reqs[0].Body)
	assert.JSONEq(t, `{"Done":true}`, reqs[2].Body)
}

func TestRemoveItem_DeleteWithoutBody(t *testing.T) {
	stub, c := setupStub(t, sampleItems)
	entries, err := c.Load(context.Background())
	require.NoError(t, err)
	stub.reset()

	require.NoError(t, c.RemoveItem(context.Background(), entries[2]))

	reqs := stub.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, recordedRequest{Method: http.MethodDelete, Path: "/items/delete/" + sampleItems[2].UUID}, reqs[0])
	assert.Equal(t, "/items", reqs[1].Path)
}

func TestMutationFailureStillReloads(t *testing.T) {
	stub, c := setupStub(t, sampleItems)
	stub.status = http.StatusNotFound

	err := c.RemoveItem(context.Background(), Entry{Item: models.Item{UUID: "missing"}})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, http.MethodDelete, se.Method)

	reqs := stub.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/items", reqs[1].Path, "reload happens even when the mutation fails")
	assert.Len(t, c.Entries(), len(sampleItems))
}

func TestRevisions(t *testing.T) {
	t.Run("revision 1 lists and creates on legacy path", func(t *testing.T) {
		stub, c := setupStub(t, sampleItems, WithRevision(Revision1))
		entries, err := c.Load(context.Background())
		require.NoError(t, err)
		assert.False(t, entries[0].HasDoneControl)
		assert.False(t, entries[0].HasRemoveControl)
		stub.reset()

		require.NoError(t, c.KeyPress(context.Background(), "enter", "x"))
		assert.Equal(t, "/create", stub.recorded()[0].Path)

		stub.reset()
		assert.ErrorIs(t, c.ToggleDone(context.Background(), entries[0]), ErrUnsupported)
		assert.ErrorIs(t, c.RemoveItem(context.Background(), entries[0]), ErrUnsupported)
		assert.Empty(t, stub.recorded())
	})

	t.Run("revision 2 toggles on legacy path", func(t *testing.T) {
		stub, c := setupStub(t, sampleItems, WithRevision(Revision2))
		entries, err := c.Load(context.Background())
		require.NoError(t, err)
		assert.True(t, entries[0].HasDoneControl)
		assert.False(t, entries[0].HasRemoveControl)
		stub.reset()

		require.NoError(t, c.ToggleDone(context.Background(), entries[0]))
		assert.Equal(t, "/update/"+sampleItems[0].UUID, stub.recorded()[0].Path)
		assert.ErrorIs(t, c.RemoveItem(context.Background(), entries[0]), ErrUnsupported)
	})

	t.Run("unknown revision", func(t *testing.T) {
		_, err := New("http://localhost:8080", WithRevision(Revision(4)))
		assert.Error(t, err)
	})
}

func TestFind(t *testing.T) {
	_, c := setupStub(t, sampleItems)
	_, err := c.Load(context.Background())
	require.NoError(t, err)

	e, err := c.Find("2")
	require.NoError(t, err)
	assert.Equal(t, "Walk dog", e.Item.Name)

	e, err = c.Find(sampleItems[2].UUID)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Index)

	_, err = c.Find("0")
	assert.Error(t, err)
	_, err = c.Find("4")
	assert.Error(t, err)
	_, err = c.Find("nope")
	assert.EqualError(t, err, "item not found: nope")
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:8080/items")
	assert.Error(t, err)
}
