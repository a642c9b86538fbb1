package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer  = errors.New("Internal server error")
	ErrClient          = errors.New("Bad request")
	ErrNotFound        = errors.New("Resource not found")
	ErrProductNotFound = errors.New("Product not found")
	ErrCommentNotFound = errors.New("Comment not found")
	ErrInvalidID       = errors.New("Invalid identifier format")
)

var errorMap = map[error]int{
	ErrInternalServer:  ErrStatusInternalServer,
	ErrClient:          ErrStatusClient,
	ErrNotFound:        ErrStatusNotFound,
	ErrProductNotFound: ErrStatusNotFound,
	ErrCommentNotFound: ErrStatusNotFound,
	ErrInvalidID:       ErrStatusClient,
}

// FieldError carries a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the validation failure for a whole payload. It lists every
// violated field, not just the first one.
type FieldErrors []FieldError

func (f FieldErrors) Error() string {
	messages := make([]string, 0, len(f))
	for _, fe := range f {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(messages, "; ")
}

func GetErrorStatusCode(err error) int {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return ErrStatusClient
	}

	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
