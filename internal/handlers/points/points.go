package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/dto"
	"github.com/lexqna/lexqna/internal/payment"
	"github.com/lexqna/lexqna/internal/service/pointservice"
	"github.com/lexqna/lexqna/internal/session"
	"github.com/lexqna/lexqna/pkg/auth"
	"github.com/lexqna/lexqna/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, lawyerUserID string) (*domain.PointWallet, error)
	GetTransactions(ctx context.Context, lawyerUserID string) ([]domain.PointTransaction, error)
	CreateTopupSession(ctx context.Context, lawyerUserID string, amount int64) (*session.TopupSession, error)
	ConfirmTopup(ctx context.Context, lawyerUserID, orderID, paymentKey string) (*domain.PointWallet, error)
}

type PointsHandler struct {
	pointService Service
}

func New(pointService Service) *PointsHandler {
	return &PointsHandler{
		pointService: pointService,
	}
}

// GetBalance godoc
//
//	@Summary		Get point balance
//	@Description	Current point balance of the authenticated lawyer
//	@Tags			Points
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/points/balance [get]
func (h *PointsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	wallet, err := h.pointService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, pointservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: wallet.Balance})
}

// GetTransactions godoc
//
//	@Summary		List point transactions
//	@Description	Transaction history of the authenticated lawyer, newest first
//	@Tags			Points
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/points/transactions [get]
func (h *PointsHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.pointService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, dto.TransactionResponseDTO{
			TransactionID:     tx.ID,
			Amount:            tx.Amount,
			Type:              string(tx.Type),
			BalanceAfter:      tx.BalanceAfter,
			RelatedQuestionID: tx.RelatedQuestionID,
			RelatedAnswerID:   tx.RelatedAnswerID,
			CreatedAt:         tx.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateTopupSession godoc
//
//	@Summary		Start a point top-up
//	@Description	Open a payment session for the given amount; nothing is credited yet
//	@Tags			Points
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateTopupSessionRequestDTO	true	"Top-up request body"
//	@Success		200		{object}	dto.CreateTopupSessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount below minimum"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/points/topup [post]
func (h *PointsHandler) CreateTopupSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateTopupSessionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.pointService.CreateTopupSession(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, pointservice.ErrAmountBelowMinimum):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pointservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Wallet not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateTopupSessionResponseDTO{
		OrderID:   sess.OrderID,
		Amount:    sess.Amount,
		ExpiresAt: time.Now().Add(session.TTL),
	})
}

// ConfirmTopup godoc
//
//	@Summary		Confirm a point top-up
//	@Description	Confirm the payment with the gateway and credit the wallet; replays of a confirmed payment are credited once
//	@Tags			Points
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmTopupRequestDTO	true	"Confirmation body"
//	@Success		200		{object}	dto.ConfirmTopupResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Session not found or expired"
//	@Failure		422		{object}	utils.Response	"Payment rejected by gateway"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/points/topup/confirm [post]
func (h *PointsHandler) ConfirmTopup(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ConfirmTopupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PaymentKey == "" || req.OrderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, err := h.pointService.ConfirmTopup(r.Context(), userID, req.OrderID, req.PaymentKey)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Top-up session not found or expired")
		case errors.Is(err, pointservice.ErrSessionMismatch):
			utils.RespondWithError(w, http.StatusForbidden, "Session belongs to another user")
		case errors.Is(err, payment.ErrConfirmRejected), errors.Is(err, payment.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Payment rejected by gateway")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConfirmTopupResponseDTO{
		NewBalance: wallet.Balance,
	})
}
