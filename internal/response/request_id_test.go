package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestIDHonorsValidInboundID(t *testing.T) {
	r := requestIDRouter()
	inbound := uuid.New().String()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, inbound)
	r.ServeHTTP(w, req)

	assert.Equal(t, inbound, w.Header().Get(HeaderRequestID))
}

func TestRequestIDReplacesJunkInboundID(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid")
	r.ServeHTTP(w, req)

	echoed := w.Header().Get(HeaderRequestID)
	assert.NotEqual(t, "not-a-uuid", echoed)
	_, err := uuid.Parse(echoed)
	require.NoError(t, err)
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	r := requestIDRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	require.NoError(t, err)
}
