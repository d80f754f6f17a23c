package verification

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/dto"
	"github.com/lexqna/lexqna/internal/service/verificationservice"
	"github.com/lexqna/lexqna/pkg/auth"
	"github.com/lexqna/lexqna/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, lawyerUserID string, documents []string, message string) (*domain.VerificationRequest, error)
}

type VerificationHandler struct {
	verificationService Service
}

func New(verificationService Service) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

// Submit godoc
//
//	@Summary		Submit credentials for review
//	@Description	Upload credential documents and request verification; allowed while pending or after rejection
//	@Tags			Verification
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitVerificationRequestDTO	true	"Verification request body"
//	@Success		200		{object}	dto.SubmitVerificationResponseDTO
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		409		{object}	utils.ErrorResponse	"Already in review or approved"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/verification [post]
func (h *VerificationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitVerificationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Documents) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.verificationService.Submit(r.Context(), userID, req.Documents, req.Message)
	if err != nil {
		var blocked *verificationservice.UploadBlockedError
		switch {
		case errors.As(err, &blocked):
			utils.RespondWithReasons(w, http.StatusConflict, "Verification submission blocked", []string{string(blocked.Reason)})
		case errors.Is(err, verificationservice.ErrLawyerNotFound):
			utils.RespondWithError(w, http.StatusForbidden, "Lawyer profile required")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitVerificationResponseDTO{RequestID: request.ID})
}
