package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()
}

func serveError(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-1")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"user not found", fmt.Errorf("lookup: %w", ErrAccountNotFound), http.StatusNotFound, "user not found"},
		{"post not found", ErrPostNotFound, http.StatusNotFound, "post not found"},
		{"album not found", ErrAlbumNotFound, http.StatusNotFound, "album not found"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "Authentication credentials were not provided or are invalid"},
		{"database", fmt.Errorf("%w: boom", ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := serveError(t, tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestHandleServiceError_Validation(t *testing.T) {
	code, body := serveError(t, fmt.Errorf("create: %w", NewValidationError("email", "taken")))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"taken"}, body.Errors["email"])
}

func TestHandleServiceError_InvalidCredentials(t *testing.T) {
	code, body := serveError(t, ErrInvalidCredentials)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body.Errors, NonFieldErrors)
}

type nestedReq struct {
	Street string `json:"street" binding:"required"`
}

type bindReq struct {
	Email   string     `json:"email" binding:"required,email"`
	Name    string     `json:"name" binding:"max=3"`
	Address *nestedReq `json:"address"`
}

func TestTranslateBindingError(t *testing.T) {
	var req bindReq
	err := bindJSON(t, `{"email":"nope","name":"toolong","address":{}}`, &req)

	verr := TranslateBindingError(err)
	require.NotNil(t, verr)
	assert.Equal(t, []string{"Enter a valid email address."}, verr.Fields["email"])
	assert.Equal(t, []string{"Ensure this field has no more than 3 characters."}, verr.Fields["name"])
	assert.Equal(t, []string{"This field is required."}, verr.Fields["address.street"])
}

func TestTranslateBindingError_MalformedJSON(t *testing.T) {
	var req bindReq
	err := bindJSON(t, `{"email":`, &req)

	assert.Nil(t, TranslateBindingError(err))
}

func bindJSON(t *testing.T, body string, out interface{}) error {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	err := c.ShouldBindJSON(out)
	require.Error(t, err)
	return err
}
