package model

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoDB attribute names for a stored book. The title is renamed on
// the wire to match the existing table contents.
const (
	AttrID    = "id"
	AttrTitle = "bookTitle"
)

// Book is the record served by the lookup endpoint.
type Book struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"bookTitle"`
}

// NewBook creates a new Book instance with a fresh identifier.
func NewBook(title string) Book {
	return Book{
		ID:    uuid.New(),
		Title: title,
	}
}

// DecodeError reports a stored item that does not conform to the
// expected attribute shape.
type DecodeError struct {
	Attr string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode book: attribute %q: %v", e.Attr, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeBook converts a DynamoDB attribute map into a Book.
// The id attribute must be a string holding a valid UUID; a missing
// title decodes to the empty string.
func DecodeBook(attrs map[string]types.AttributeValue) (*Book, error) {
	idAttr, ok := attrs[AttrID]
	if !ok {
		return nil, &DecodeError{Attr: AttrID, Err: fmt.Errorf("attribute missing")}
	}
	idStr, ok := idAttr.(*types.AttributeValueMemberS)
	if !ok {
		return nil, &DecodeError{Attr: AttrID, Err: fmt.Errorf("expected string attribute, got %T", idAttr)}
	}

	id, err := uuid.Parse(idStr.Value)
	if err != nil {
		return nil, &DecodeError{Attr: AttrID, Err: err}
	}

	book := Book{ID: id}
	if titleAttr, ok := attrs[AttrTitle].(*types.AttributeValueMemberS); ok {
		book.Title = titleAttr.Value
	}

	return &book, nil
}

// EncodeBook is the inverse of DecodeBook, used to seed records.
// The identifier is stored in its canonical string form.
func EncodeBook(book Book) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrID:    &types.AttributeValueMemberS{Value: book.ID.String()},
		AttrTitle: &types.AttributeValueMemberS{Value: book.Title},
	}
}

// Key builds the primary key for a raw identifier string. The string
// is used as-is: an identifier that is not a UUID simply matches no
// record.
func Key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrID: &types.AttributeValueMemberS{Value: id},
	}
}
