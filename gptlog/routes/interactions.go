package routes

import (
	"encoding/json"
	"net/http"

	"gptlog/gptlog/config"
	"gptlog/gptlog/controllers"
	"gptlog/gptlog/middlewares"
	"gptlog/gptlog/utils/types"

	"github.com/go-chi/chi/v5"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func InteractionRoutes(ctrl *controllers.InteractionController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.APIKey(cfg))
		// POST /log_interaction : persist one user/assistant exchange
		gr.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req types.LogInteractionRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "No JSON data provided")
				return
			}
			if req.UserMessage == "" || req.GptResponse == "" {
				respondError(w, http.StatusBadRequest, "'userMessage' and 'gptResponse' are required")
				return
			}
			resp, err := ctrl.LogInteraction(r.Context(), req)
			if err != nil {
				respondError(w, http.StatusInternalServerError, "Failed to log interaction: "+err.Error())
				return
			}
			respondJSON(w, http.StatusOK, resp)
		})
	})
	return r
}
