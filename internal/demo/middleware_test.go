package demo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newDemoRouter(enabled bool) *gin.Engine {
	router := gin.New()
	router.Use(NewMiddleware(enabled).Handler())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "OK") }
	router.GET("/api/libro", ok)
	router.HEAD("/api/libro", ok)
	router.POST("/api/libro", ok)
	router.PUT("/api/libro/:id", ok)
	router.DELETE("/api/libro/:id", ok)
	router.POST("/api/login", ok)
	return router
}

func TestNewMiddleware(t *testing.T) {
	if !NewMiddleware(true).IsEnabled() {
		t.Error("Expected middleware to be enabled")
	}
	if NewMiddleware(false).IsEnabled() {
		t.Error("Expected middleware to be disabled")
	}
}

func TestMiddleware_Enabled(t *testing.T) {
	router := newDemoRouter(true)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/libro", http.StatusOK},
		{http.MethodHead, "/api/libro", http.StatusOK},
		{http.MethodPost, "/api/login", http.StatusOK},
		{http.MethodPost, "/api/libro", http.StatusForbidden},
		{http.MethodPut, "/api/libro/1", http.StatusForbidden},
		{http.MethodDelete, "/api/libro/1", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("Expected status %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestMiddleware_BlockedResponse(t *testing.T) {
	router := newDemoRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/libro", nil))

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["demo_mode"] != true {
		t.Error("Expected demo_mode flag in response")
	}
	if response["msg"] != "accion deshabilitada en modo demo" {
		t.Errorf("Unexpected msg: %v", response["msg"])
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	router := newDemoRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/libro/1", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 when disabled, got %d", w.Code)
	}
}
