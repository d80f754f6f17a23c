package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Message string `json:"message"`
}

// ErrorResponse carries the machine-readable reason codes collected by
// the policy engines alongside the human message.
type ErrorResponse struct {
	Message string   `json:"message"`
	Reasons []string `json:"reasons,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Response{Message: message})
}

func RespondWithReasons(w http.ResponseWriter, statusCode int, message string, reasons []string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Message: message, Reasons: reasons})
}
