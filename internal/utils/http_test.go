package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_MessageResponse(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string][]string{"tags": {"go", "rust"}}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"tags":["go","rust"]}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	if _, err := WriteJSON(w, map[string]string{"error": "bad"}, http.StatusBadGateway); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected status %d, got %d", http.StatusBadGateway, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	a, b := g.Generate(), g.Generate()
	if a == "" || a == b {
		t.Fatalf("expected two distinct ids, got %q and %q", a, b)
	}
}
