package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gptlog/gptlog/config"
	"gptlog/gptlog/utils/logging"
)

func runAPIKey(t *testing.T, cfg config.Config, key string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	logging.InitLogger()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/log_interaction", nil)
	if key != "" {
		req.Header.Set(APIKeyHeader, key)
	}
	rr := httptest.NewRecorder()
	APIKey(cfg)(next).ServeHTTP(rr, req)
	return rr, nextCalled
}

func TestAPIKeyNoSecretConfigured(t *testing.T) {
	rr, nextCalled := runAPIKey(t, config.Config{}, "anything")
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if nextCalled {
		t.Error("next handler should not be called without a configured secret")
	}
	if !strings.Contains(rr.Body.String(), "API key not set") {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestAPIKeyMissingHeader(t *testing.T) {
	rr, nextCalled := runAPIKey(t, config.Config{APIKey: "abc123"}, "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if nextCalled {
		t.Error("next handler should not be called without a key")
	}
	if !strings.Contains(rr.Body.String(), "Unauthorized: Invalid API Key") {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestAPIKeyWrongKey(t *testing.T) {
	rr, nextCalled := runAPIKey(t, config.Config{APIKey: "abc123"}, "wrong")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if nextCalled {
		t.Error("next handler should not be called with a wrong key")
	}
}

func TestAPIKeyValid(t *testing.T) {
	rr, nextCalled := runAPIKey(t, config.Config{APIKey: "abc123"}, "abc123")
	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !nextCalled {
		t.Error("next handler should be called with a valid key")
	}
}
