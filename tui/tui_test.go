package tui

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/listclient"
	"todolist/models"
)

type hit struct {
	method, path, body string
}

type backend struct {
	mu    sync.Mutex
	items []models.Item
	hits  []hit
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.hits = append(b.hits, hit{r.Method, r.URL.Path, string(body)})
	items := b.items
	b.mu.Unlock()

	if r.Method == http.MethodGet {
		json.NewEncoder(w).Encode(items)
	}
}

func (b *backend) recorded() []hit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]hit(nil), b.hits...)
}

func (b *backend) reset() {
	b.mu.Lock()
	b.hits = nil
	b.mu.Unlock()
}

var items = []models.Item{
	{UUID: "0b6f0a5e-64a4-4a53-9a9e-3f1b9b2f4b10", Name: "Buy milk"},
	{UUID: "5d1f6c1a-8e8a-4c7b-a0a3-6b1e0b3f2c21", Name: "Walk dog", Done: true},
}

// loadedModel returns a model that has already run its initial load.
func loadedModel(t *testing.T, rev listclient.Revision) (*backend, Model) {
	b := &backend{items: items}
	srv := httptest.NewServer(b)
	t.Cleanup(srv.Close)

	c, err := listclient.New(srv.URL, listclient.WithRevision(rev))
	require.NoError(t, err)

	m := New(context.Background(), c)
	msg := m.Init()()
	next, _ := m.Update(msg)
	b.reset()
	return b, next.(Model)
}

func press(m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitLoadsEntries(t *testing.T) {
	_, m := loadedModel(t, listclient.Revision3)

	require.Len(t, m.list.Items(), 2)
	first := m.list.Items()[0].(entryItem)
	assert.Equal(t, "Buy milk", first.entry.Item.Name)
	assert.Empty(t, m.status)
	assert.Contains(t, m.View(), "Walk dog")
}

func TestTypingThenEnterCreates(t *testing.T) {
	b, m := loadedModel(t, listclient.Revision3)

	m, _ = press(m, runes("a"))
	require.True(t, m.typing)

	m, _ = press(m, runes("Buy bread"))
	assert.Empty(t, b.recorded(), "typing must not touch the network")
	assert.Equal(t, "Buy bread", m.input.Value())

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, m.input.Value())

	msg := cmd()
	_, ok := msg.(reloadedMsg)
	require.True(t, ok)

	hits := b.recorded()
	require.Len(t, hits, 2)
	assert.Equal(t, http.MethodPost, hits[0].method)
	assert.Equal(t, "/items/create", hits[0].path)
	assert.JSONEq(t, `{"Name":"Buy bread"}`, hits[0].body)
	assert.Equal(t, "/items", hits[1].path)
}

func TestEscLeavesNameField(t *testing.T) {
	b, m := loadedModel(t, listclient.Revision3)

	m, _ = press(m, runes("a"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.typing)
	assert.Empty(t, b.recorded())
}

func TestSpaceTogglesSelected(t *testing.T) {
	b, m := loadedModel(t, listclient.Revision3)

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.NotNil(t, cmd)
	cmd()

	hits := b.recorded()
	require.NotEmpty(t, hits)
	assert.Equal(t, http.MethodPut, hits[0].method)
	assert.Equal(t, "/items/update/"+items[0].UUID, hits[0].path)
	assert.JSONEq(t, `{"Done":true}`, hits[0].body)
}

func TestRemoveSelected(t *testing.T) {
	b, m := loadedModel(t, listclient.Revision3)

	_, cmd := press(m, runes("d"))
	require.NotNil(t, cmd)
	cmd()

	hits := b.recorded()
	require.NotEmpty(t, hits)
	assert.Equal(t, hit{http.MethodDelete, "/items/delete/" + items[0].UUID, ""}, hits[0])
}

func TestRevisionOneHasNoControls(t *testing.T) {
	b, m := loadedModel(t, listclient.Revision1)

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Nil(t, cmd)
	_, cmd = press(m, runes("d"))
	assert.Nil(t, cmd)
	assert.Empty(t, b.recorded())
}

func TestReloadedErrorShowsStatus(t *testing.T) {
	_, m := loadedModel(t, listclient.Revision3)

	next, _ := m.Update(reloadedMsg{entries: nil, err: listclient.ErrUnsupported})
	m = next.(Model)
	assert.Equal(t, listclient.ErrUnsupported.Error(), m.status)
	assert.Empty(t, m.list.Items())
}
