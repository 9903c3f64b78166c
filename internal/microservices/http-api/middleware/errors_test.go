package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"placehub/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		code    apperror.Code
	}{
		{"not found", apperror.NotFound("place not found"), http.StatusNotFound, "place not found", apperror.CodeNotFound},
		{"wrapped conflict", fmt.Errorf("create: %w", apperror.Conflict("share id already taken")), http.StatusConflict, "share id already taken", apperror.CodeConflict},
		{"unavailable", apperror.ErrStoreUnavailable, http.StatusServiceUnavailable, "database not available", apperror.CodeUnavailable},
		{"plain error", errors.New("dial tcp 10.0.0.1:5432: refused"), http.StatusInternalServerError, "internal error", apperror.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			WriteError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["error"])
			assert.Equal(t, string(tt.code), body["code"])
		})
	}
}

func TestWriteError_RecordsInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	WriteError(c, errors.New("boom"))

	require.Len(t, c.Errors, 1)
	assert.EqualError(t, c.Errors[0].Err, "boom")
}
