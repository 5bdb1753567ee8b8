package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpH "github.com/rulzurlabs/rulzurapi/internal/http/handlers"
)

func TestNewServerServesConfiguredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(RouterConfig{HealthHandler: httpH.NewHealthHandler()})
	if s.Engine == nil {
		t.Fatal("expected configured engine")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	s.Engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "ok" {
		t.Errorf("expected ok body, got %q", w.Body.String())
	}
}

func TestNewServerOmitsUnconfiguredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewServer(RouterConfig{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	s.Engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unwired handler, got %d", w.Code)
	}
}
