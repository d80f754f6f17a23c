package aichat

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lexqna/lexqna/internal/dto"
	"github.com/lexqna/lexqna/pkg/auth"
	"github.com/lexqna/lexqna/pkg/utils"
)

type Service interface {
	Chat(ctx context.Context, userID, message string) (string, error)
}

type AIChatHandler struct {
	aiService Service
}

func New(aiService Service) *AIChatHandler {
	return &AIChatHandler{
		aiService: aiService,
	}
}

// Chat godoc
//
//	@Summary		Ask the legal assistant
//	@Description	Send a message to the AI assistant; the reply always carries a non-advice disclaimer
//	@Tags			AI
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AIChatRequestDTO	true	"Chat body"
//	@Success		200		{object}	dto.AIChatResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		502		{object}	utils.Response	"Assistant unavailable"
//	@Security		BearerAuth
//	@Router			/api/ai/chat [post]
func (h *AIChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.AIChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	last := req.Messages[len(req.Messages)-1]
	if last.Content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Message content is required")
		return
	}

	reply, err := h.aiService.Chat(r.Context(), userID, last.Content)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Assistant unavailable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AIChatResponseDTO{Reply: reply})
}
