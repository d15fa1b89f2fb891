// gptlog/middlewares/auth.go
package middlewares

import (
	"encoding/json"
	"net/http"

	"gptlog/gptlog/config"
	"gptlog/gptlog/utils/logging"

	"go.uber.org/zap"
)

const APIKeyHeader = "X-API-KEY"

// APIKey guards write endpoints with a shared-secret header check.
// A server with no configured secret rejects everything with 500 rather
// than running open.
func APIKey(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.APIKey == "" {
				logging.ErrorLogger.Error("API_KEY environment variable not set on server")
				writeError(w, http.StatusInternalServerError, "Server configuration error: API key not set")
				return
			}
			key := r.Header.Get(APIKeyHeader)
			if key == "" || key != cfg.APIKey {
				logging.AppLogger.Warn("authentication failed",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				writeError(w, http.StatusUnauthorized, "Unauthorized: Invalid API Key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
