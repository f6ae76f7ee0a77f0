package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "created", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "created", resp.Message)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		wantCode int
	}{
		{"bad request", BadRequestResponse, http.StatusBadRequest},
		{"unauthorized", UnauthorizedResponse, http.StatusUnauthorized},
		{"forbidden", ForbiddenResponse, http.StatusForbidden},
		{"not found", NotFoundResponse, http.StatusNotFound},
		{"internal", InternalServerErrorResponse, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tt.fn(c, "boom")
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, "boom", resp.Error)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
