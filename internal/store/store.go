package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"book-lookup/internal/model"
)

// TableBooks is the backing table. Its single hash key is the book id.
const TableBooks = "books"

var ErrNotFound = errors.New("book not found")

// API is the slice of the DynamoDB client the store depends on.
// *dynamodb.Client satisfies it; tests substitute a fake.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type Store interface {
	Get(ctx context.Context, id string) (*model.Book, error)
	Put(ctx context.Context, book model.Book) error
	Delete(ctx context.Context, id string) error
}

// BookStore reads and writes books through a DynamoDB API.
type BookStore struct {
	api API
}

func NewBookStore(api API) *BookStore {
	return &BookStore{api: api}
}

// Get fetches one book by its raw identifier string. It returns
// ErrNotFound when no record matches; a stored record that does not
// decode surfaces as a *model.DecodeError.
func (s *BookStore) Get(ctx context.Context, id string) (*model.Book, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableBooks),
		Key:       model.Key(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get book %q: %w", id, err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}
	return model.DecodeBook(out.Item)
}

// Put writes a book, overwriting any record with the same id.
func (s *BookStore) Put(ctx context.Context, book model.Book) error {
	_, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(TableBooks),
		Item:      model.EncodeBook(book),
	})
	if err != nil {
		return fmt.Errorf("put book %q: %w", book.ID, err)
	}
	return nil
}

// Delete removes a book by id. Deleting an absent record is not an
// error.
func (s *BookStore) Delete(ctx context.Context, id string) error {
	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(TableBooks),
		Key:       model.Key(id),
	})
	if err != nil {
		return fmt.Errorf("delete book %q: %w", id, err)
	}
	return nil
}
