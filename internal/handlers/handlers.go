package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

const internalErrorMessage = "Internal Server Error"

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorResp(e.Message))
	case *services.ConflictError:
		writeJSON(w, http.StatusConflict, errorResp(e.Message))
	case *services.NotFoundError:
		writeJSON(w, http.StatusNotFound, errorResp(e.Message))
	case *services.UnauthorizedError:
		writeJSON(w, http.StatusUnauthorized, errorResp(e.Message))
	case *services.UpstreamError:
		writeJSON(w, e.Status, errorResp(e.Message))
	case *services.ConfigError:
		log.Printf("configuration error (request %s): %s", middleware.GetRequestID(r.Context()), e.Message)
		writeJSON(w, http.StatusInternalServerError, errorResp(e.Message))
	default:
		log.Printf("internal error (request %s): %v", middleware.GetRequestID(r.Context()), err)
		writeJSON(w, http.StatusInternalServerError, errorResp(internalErrorMessage))
	}
}
