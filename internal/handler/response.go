package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorType classifies a failed lookup for the caller. RequestInvalid
// and RequestUnauthorized are reserved for a future validation/auth
// layer and are not produced today.
type ErrorType string

const (
	ErrorTypeRequestInvalid      ErrorType = "request_invalid"
	ErrorTypeRequestUnauthorized ErrorType = "request_unauthorized"
	ErrorTypeNotFound            ErrorType = "not_found"
	ErrorTypeInternalServerError ErrorType = "internal_server_error"
)

// Error codes carried in error_codes to distinguish failures that
// share an error type.
const (
	CodeRecordDecode = "record_decode"
)

// ErrorResponse is the serialized body of every non-200 outcome. The
// request id correlates the response with logs and traces; internal
// error detail is never included. ErrorCodes is dropped from the JSON
// entirely when unset.
type ErrorResponse struct {
	RequestID  string    `json:"request_id"`
	ErrorType  ErrorType `json:"error_type"`
	ErrorCodes []string  `json:"error_codes,omitempty"`
}

// Response is the transport-neutral HTTP shape produced by the
// handler. The Lambda and dev-server entrypoints map it onto their
// own response types.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

func errorResponse(status int, body ErrorResponse) Response {
	// Marshaling a plain struct of strings cannot fail.
	data, _ := json.Marshal(body)
	return Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}
}

// NotFound is the response for a well-formed request matching no
// record.
func NotFound(requestID string) Response {
	return errorResponse(http.StatusNotFound, ErrorResponse{
		RequestID: requestID,
		ErrorType: ErrorTypeNotFound,
	})
}

// InternalServer is the response for a store call that failed after
// retries. The cause stays in the logs.
func InternalServer(requestID string) Response {
	return errorResponse(http.StatusInternalServerError, ErrorResponse{
		RequestID: requestID,
		ErrorType: ErrorTypeInternalServerError,
	})
}

// RecordDecodeFailed is the response for a stored record that does
// not conform to the expected shape.
func RecordDecodeFailed(requestID string) Response {
	return errorResponse(http.StatusInternalServerError, ErrorResponse{
		RequestID:  requestID,
		ErrorType:  ErrorTypeInternalServerError,
		ErrorCodes: []string{CodeRecordDecode},
	})
}
