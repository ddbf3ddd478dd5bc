package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(LoggerKey, zap.NewNop())
	RespondError(c, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondError_Kinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{NotFound("Business not found"), http.StatusNotFound, "Business not found"},
		{Conflict("Already following this business"), http.StatusConflict, "Already following this business"},
		{Forbidden("Not authorized"), http.StatusForbidden, "Not authorized"},
		{BadRequest("bad"), http.StatusBadRequest, "bad"},
		{Unauthorized("no token"), http.StatusUnauthorized, "no token"},
		{fmt.Errorf("wrapped: %w", NotFound("Review not found")), http.StatusNotFound, "Review not found"},
	}
	for _, tt := range tests {
		status, body := respond(t, tt.err)
		assert.Equal(t, tt.status, status)
		assert.Equal(t, tt.msg, body.Message)
	}
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	status, body := respond(t, Internal("storage failure", errors.New("connection refused to 10.0.0.3")))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ServerErrorMessage, body.Message)

	status, body = respond(t, errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, ServerErrorMessage, body.Message)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindForbidden, KindOf(fmt.Errorf("ctx: %w", Forbidden("x"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("x")))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Internal("outer", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "outer: cause", err.Error())
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) {
		c.Set(LoggerKey, zap.NewNop())
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
}
