package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())

	var captured string
	engine.GET("/", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	engine.ServeHTTP(recorder, req)

	if captured == "" {
		t.Error("expected a generated request id")
	}
	if header := recorder.Header().Get(RequestIDHeader); header != captured {
		t.Errorf("expected response header %q, got %q", captured, header)
	}
}

func TestRequestID_HonorsClientValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-supplied")
	engine.ServeHTTP(recorder, req)

	if header := recorder.Header().Get(RequestIDHeader); header != "client-supplied" {
		t.Errorf("expected client id to be echoed, got %q", header)
	}
}
