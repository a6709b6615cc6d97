package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"book-lookup/internal/model"
	"book-lookup/internal/store"
)

// mapStore implements store.Store over a plain map, with optional
// error injection.
type mapStore struct {
	books  map[string]model.Book
	getErr error
}

func newMapStore() *mapStore {
	return &mapStore{books: make(map[string]model.Book)}
}

func (m *mapStore) Get(ctx context.Context, id string) (*model.Book, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	book, ok := m.books[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &book, nil
}

func (m *mapStore) Put(ctx context.Context, book model.Book) error {
	m.books[book.ID.String()] = book
	return nil
}

func (m *mapStore) Delete(ctx context.Context, id string) error {
	delete(m.books, id)
	return nil
}

func TestLookup_FindsInsertedBook(t *testing.T) {
	st := newMapStore()
	lookup := NewLookup(st, zap.NewNop())
	ctx := context.Background()

	book := model.NewBook("rust")
	require.NoError(t, st.Put(ctx, book))

	resp := lookup.Handle(ctx, Request{
		PathParameters: map[string]string{"id": book.ID.String()},
		RequestID:      "req-1",
	})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "bar", resp.Headers["x-foo-bar"])
	assert.Equal(t, "baz", resp.Headers["x-bar-baz"])
	assert.JSONEq(t, `{"id":"`+book.ID.String()+`","bookTitle":"rust"}`, resp.Body)

	require.NoError(t, st.Delete(ctx, book.ID.String()))

	resp = lookup.Handle(ctx, Request{
		PathParameters: map[string]string{"id": book.ID.String()},
		RequestID:      "req-2",
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestLookup_ExactWireFormat(t *testing.T) {
	st := newMapStore()
	lookup := NewLookup(st, zap.NewNop())
	ctx := context.Background()

	book := model.Book{
		ID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Title: "rust",
	}
	require.NoError(t, st.Put(ctx, book))

	resp := lookup.Handle(ctx, Request{
		PathParameters: map[string]string{"id": "11111111-1111-1111-1111-111111111111"},
		RequestID:      "req-wire",
	})

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, `{"id":"11111111-1111-1111-1111-111111111111","bookTitle":"rust"}`, resp.Body)
}

func TestLookup_NotFound(t *testing.T) {
	lookup := NewLookup(newMapStore(), zap.NewNop())

	resp := lookup.Handle(context.Background(), Request{
		PathParameters: map[string]string{"id": "foo-bar"},
		RequestID:      "ctx-id",
	})

	assert.Equal(t, 404, resp.StatusCode)
	assert.JSONEq(t, `{"request_id":"ctx-id","error_type":"not_found"}`, resp.Body)
	assert.NotContains(t, resp.Body, "error_codes")
}

func TestLookup_MissingIDParameter(t *testing.T) {
	lookup := NewLookup(newMapStore(), zap.NewNop())

	resp := lookup.Handle(context.Background(), Request{
		PathParameters: map[string]string{},
		RequestID:      "ctx-id",
	})

	assert.Equal(t, 404, resp.StatusCode)
}

func TestLookup_StoreFailure(t *testing.T) {
	st := newMapStore()
	st.getErr = errors.New("dial tcp: connection refused")
	lookup := NewLookup(st, zap.NewNop())

	resp := lookup.Handle(context.Background(), Request{
		PathParameters: map[string]string{"id": "any"},
		RequestID:      "ctx-id",
	})

	assert.Equal(t, 500, resp.StatusCode)
	assert.JSONEq(t, `{"request_id":"ctx-id","error_type":"internal_server_error"}`, resp.Body)
	// The underlying cause must not leak to the caller.
	assert.NotContains(t, resp.Body, "connection refused")
}

func TestLookup_MalformedRecord(t *testing.T) {
	st := newMapStore()
	st.getErr = &model.DecodeError{Attr: model.AttrID, Err: errors.New("invalid UUID length")}
	lookup := NewLookup(st, zap.NewNop())

	resp := lookup.Handle(context.Background(), Request{
		PathParameters: map[string]string{"id": "any"},
		RequestID:      "ctx-id",
	})

	assert.Equal(t, 500, resp.StatusCode)
	assert.JSONEq(t, `{"request_id":"ctx-id","error_type":"internal_server_error","error_codes":["record_decode"]}`, resp.Body)
}
