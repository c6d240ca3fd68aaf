package model

import "errors"

// ErrEmptyMessage is returned when an envelope is constructed without a
// descriptive message.
var ErrEmptyMessage = errors.New("envelope message must not be empty")

// Response is the shared success envelope: a human-readable message plus the
// payload. Treat values as immutable once constructed.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// NewResponse builds a success envelope. An empty message is a caller error.
func NewResponse[T any](message string, data T) (Response[T], error) {
	if message == "" {
		return Response[T]{}, ErrEmptyMessage
	}
	return Response[T]{Success: true, Message: message, Data: data}, nil
}

// PaginatedResponse carries a page of items plus the total server-side match
// count. Count stays nil for unpaginated listings so the field is absent from
// the serialized form; when set it may exceed len(Data).
type PaginatedResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   *int64 `json:"count,omitempty"`
	Data    []T    `json:"data"`
}

// NewPaginatedResponse builds a paginated envelope. A nil data slice is
// normalized to an empty one so the JSON form is always an array.
func NewPaginatedResponse[T any](message string, count *int64, data []T) (PaginatedResponse[T], error) {
	if message == "" {
		return PaginatedResponse[T]{}, ErrEmptyMessage
	}
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{Success: true, Message: message, Count: count, Data: data}, nil
}

// ErrorEnvelope is the failure counterpart: success forced to false and an
// empty data object.
type ErrorEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func NewErrorEnvelope(message string) ErrorEnvelope {
	if message == "" {
		message = "Request failed"
	}
	return ErrorEnvelope{Success: false, Message: message, Data: map[string]any{}}
}
