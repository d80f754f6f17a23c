package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/dto"
	"github.com/lexqna/lexqna/internal/policy/verifypolicy"
	"github.com/lexqna/lexqna/internal/service/verificationservice"
	"github.com/lexqna/lexqna/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.VerificationRequest, error)
	Decide(ctx context.Context, requestID string, action verifypolicy.DecisionAction, adminComment string) (*domain.VerificationRequest, error)
}

type AdminHandler struct {
	verificationService Service
}

func New(verificationService Service) *AdminHandler {
	return &AdminHandler{
		verificationService: verificationService,
	}
}

// ListVerifications godoc
//
//	@Summary		List verification requests
//	@Description	All credential review requests, newest first
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	dto.VerificationListResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/verifications [get]
func (h *AdminHandler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	requests, err := h.verificationService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.VerificationListResponseDTO{Total: len(requests)}
	for _, request := range requests {
		resp.Requests = append(resp.Requests, dto.VerificationRequestDTO{
			RequestID:    request.ID,
			LawyerUserID: request.LawyerUserID,
			Status:       string(request.Status),
			Documents:    request.Documents,
			Message:      request.Message,
			SubmittedAt:  request.SubmittedAt,
			ReviewedAt:   request.ReviewedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// DecideVerification godoc
//
//	@Summary		Decide a verification request
//	@Description	Approve or reject an in-review credential request
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request ID"
//	@Param			request	body		dto.DecideVerificationRequestDTO	true	"Decision body"
//	@Success		200		{object}	dto.DecideVerificationResponseDTO
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		404		{object}	utils.Response		"Request not found"
//	@Failure		409		{object}	utils.ErrorResponse	"Request not in review"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/admin/verifications/{id} [post]
func (h *AdminHandler) DecideVerification(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req dto.DecideVerificationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var action verifypolicy.DecisionAction
	switch req.Decision {
	case "approve":
		action = verifypolicy.ActionApprove
	case "reject":
		action = verifypolicy.ActionReject
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Decision must be approve or reject")
		return
	}

	request, err := h.verificationService.Decide(r.Context(), requestID, action, req.AdminComment)
	if err != nil {
		var rejected *verificationservice.DecisionRejectedError
		switch {
		case errors.As(err, &rejected):
			utils.RespondWithReasons(w, http.StatusConflict, "Decision rejected", []string{string(rejected.Reason)})
		case errors.Is(err, verificationservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Verification request not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DecideVerificationResponseDTO{
		RequestID:  request.ID,
		NextStatus: string(request.Status),
	})
}
