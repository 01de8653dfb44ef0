package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeToHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeNotFound:   http.StatusNotFound,
		ErrCodeBadRequest: http.StatusBadRequest,
		ErrCodeValidation: http.StatusBadRequest,
		ErrCodeConflict:   http.StatusConflict,
		ErrCodeTooMany:    http.StatusTooManyRequests,
		ErrCodeCancelled:  499,
		ErrCodeInternal:   http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, New(code, "x").HTTPStatus, code)
	}
}

func TestWrap_KeepsCause(t *testing.T) {
	err := Wrap(context.Canceled, ErrCodeCancelled, "операция отменена")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "REQUEST_CANCELLED")
	assert.Contains(t, err.Error(), "context canceled")
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("repo: %w", ErrSessionNotFound)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.True(t, IsValidation(Validation("bad")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
