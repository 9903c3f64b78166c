package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesByCode(t *testing.T) {
	err := NotFound("place not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))

	wrapped := fmt.Errorf("get place: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestWithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrStoreUnavailable.WithCause(cause)

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "database not available: connection refused", err.Error())
}

func TestHTTPStatus(t *testing.T) {
	tests := map[*Error]int{
		ErrNotFound:         http.StatusNotFound,
		ErrUnauthenticated:  http.StatusUnauthorized,
		ErrForbidden:        http.StatusForbidden,
		ErrValidation:       http.StatusBadRequest,
		ErrConflict:         http.StatusConflict,
		ErrRateLimited:      http.StatusTooManyRequests,
		ErrStoreUnavailable: http.StatusServiceUnavailable,
		ErrInternal:         http.StatusInternalServerError,
	}
	for err, status := range tests {
		assert.Equal(t, status, err.HTTPStatus(), string(err.Code))
	}
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	conflict := Conflict("category already exists")
	assert.Same(t, conflict, From(fmt.Errorf("create: %w", conflict)))

	plain := errors.New("boom")
	converted := From(plain)
	assert.Equal(t, CodeInternal, converted.Code)
	assert.ErrorIs(t, converted, plain)
}
