// handlers_health_test.go - Tests for the health endpoint
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandleHealth(t *testing.T) {
	h := newTestHandler(t, testAllocations())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := h.HandleHealth(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
	if resp["version"] != "test" {
		t.Errorf("expected version test, got %v", resp["version"])
	}
	if _, ok := resp["viewers"]; !ok {
		t.Error("expected a viewers count")
	}
	if _, ok := resp["snapshotId"]; !ok {
		t.Error("expected snapshot metadata after the initial refresh")
	}
}
