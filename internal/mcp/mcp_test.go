package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe/m/domain"
	"wardrobe/m/internal/store"
)

// mockStore implements Store for testing.
type mockStore struct {
	items []domain.Item
	wears []domain.Wear
	err   error
}

func (m *mockStore) Items(context.Context) ([]domain.Item, error) { return m.items, m.err }

func (m *mockStore) Wears(context.Context) ([]domain.Wear, error) { return m.wears, m.err }

func (m *mockStore) Item(_ context.Context, id string) (domain.Item, error) {
	if m.err != nil {
		return domain.Item{}, m.err
	}
	for _, it := range m.items {
		if it.UniqueID != nil && *it.UniqueID == id {
			return it, nil
		}
	}
	return domain.Item{}, store.ErrNotFound
}

func str(s string) *string { return &s }

func num(n float64) *float64 { return &n }

func newTestServer(t *testing.T, m *mockStore) *Server {
	t.Helper()
	s, err := NewServer(m, "test")
	require.NoError(t, err)
	return s
}

func TestNewServer_RequiresStore(t *testing.T) {
	_, err := NewServer(nil, "test")
	assert.Error(t, err)
}

func TestListItems(t *testing.T) {
	s := newTestServer(t, &mockStore{items: []domain.Item{{UniqueID: str("jeans-01"), Item: str("Black jeans")}}})

	res, out, err := s.handleListItems(context.Background(), nil, ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, str("Black jeans"), out.Items[0].Item)

	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"unique_id": "jeans-01"`)
}

func TestListWears(t *testing.T) {
	s := newTestServer(t, &mockStore{wears: []domain.Wear{{UniqueID: "jeans-01", Month: str("2023-01"), Wears: num(5)}}})

	_, out, err := s.handleListWears(context.Background(), nil, ListInput{})
	require.NoError(t, err)
	require.NotNil(t, out.Wears[0].Wears)
	assert.Equal(t, 5.0, *out.Wears[0].Wears)
}

func TestListWears_StoreError(t *testing.T) {
	s := newTestServer(t, &mockStore{err: errors.New("disk gone")})

	_, _, err := s.handleListWears(context.Background(), nil, ListInput{})
	assert.ErrorContains(t, err, "disk gone")
}

func TestGetItem(t *testing.T) {
	s := newTestServer(t, &mockStore{items: []domain.Item{{UniqueID: str("jeans-01"), Item: str("Black jeans")}}})

	_, item, err := s.handleGetItem(context.Background(), nil, GetItemInput{UniqueID: " jeans-01 "})
	require.NoError(t, err)
	assert.Equal(t, str("Black jeans"), item.Item)

	_, _, err = s.handleGetItem(context.Background(), nil, GetItemInput{UniqueID: "nope"})
	assert.ErrorContains(t, err, "not found")

	_, _, err = s.handleGetItem(context.Background(), nil, GetItemInput{})
	assert.ErrorContains(t, err, "required")
}
