package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"book-lookup/internal/model"
	"book-lookup/internal/store"
)

// Request is the slice of an incoming invocation the handler needs:
// the path parameters and the runtime-assigned correlation id.
type Request struct {
	PathParameters map[string]string
	RequestID      string
}

// Lookup serves single-book reads. It performs no retries of its own;
// that is the store client's job.
type Lookup struct {
	books  store.Store
	logger *zap.Logger
}

func NewLookup(books store.Store, logger *zap.Logger) *Lookup {
	return &Lookup{books: books, logger: logger}
}

// Handle fetches the book named by the "id" path parameter. A missing
// parameter is looked up as the empty string and falls out as not
// found rather than being rejected.
func (l *Lookup) Handle(ctx context.Context, req Request) Response {
	id := req.PathParameters["id"]
	logger := l.logger.With(zap.String("request_id", req.RequestID))
	logger.Info("get book by id", zap.String("id", id))

	book, err := l.books.Get(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound(req.RequestID)
	case err != nil:
		var decodeErr *model.DecodeError
		if errors.As(err, &decodeErr) {
			logger.Error("stored book is malformed", zap.String("id", id), zap.Error(err))
			return RecordDecodeFailed(req.RequestID)
		}
		logger.Error("book store call failed", zap.String("id", id), zap.Error(err))
		return InternalServer(req.RequestID)
	}

	body, err := json.Marshal(book)
	if err != nil {
		logger.Error("marshal book failed", zap.String("id", id), zap.Error(err))
		return InternalServer(req.RequestID)
	}

	return Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type": "application/json",
			"x-foo-bar":    "bar",
			"x-bar-baz":    "baz",
		},
		Body: string(body),
	}
}
