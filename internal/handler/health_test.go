package handler_test

import (
	"net/http"
	"testing"
	"time"
)

func TestCheckHealth(t *testing.T) {
	e := newTestRouter(t, newMockStore())

	rec := doRequest(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != "OK" {
		t.Errorf("status = %v, want OK", body["status"])
	}
	if body["message"] != "QuickBite API is running" {
		t.Errorf("message = %v", body["message"])
	}

	ts, ok := body["timestamp"].(string)
	if !ok {
		t.Fatalf("timestamp = %v", body["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", ts, err)
	}
}
