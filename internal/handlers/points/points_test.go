package points

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/payment"
	"github.com/lexqna/lexqna/internal/service/pointservice"
	"github.com/lexqna/lexqna/internal/session"
	"github.com/lexqna/lexqna/pkg/auth"
	"github.com/lexqna/lexqna/pkg/utils"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body, userID string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if userID != "" {
		req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
	}
	return req
}

func TestGetBalanceHandler(t *testing.T) {
	t.Run("Existing wallet", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetBalance(gomock.Any(), "lawyer-1").Return(&domain.PointWallet{Balance: 5000}, nil)

		rr := httptest.NewRecorder()
		handler.GetBalance(rr, newRequest("GET", "/api/points/balance", "", "lawyer-1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, float64(5000), resp["balance"])
	})

	t.Run("Missing wallet", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().GetBalance(gomock.Any(), "lawyer-1").Return(nil, pointservice.ErrWalletNotFound)

		rr := httptest.NewRecorder()
		handler.GetBalance(rr, newRequest("GET", "/api/points/balance", "", "lawyer-1"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Missing auth context", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.GetBalance(rr, newRequest("GET", "/api/points/balance", "", ""))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().GetTransactions(gomock.Any(), "lawyer-1").Return([]domain.PointTransaction{
		{ID: "tx-1", Amount: 10000, Type: domain.TransactionCharge, BalanceAfter: 15000},
		{ID: "tx-2", Amount: -1000, Type: domain.TransactionAnswerDeduction, BalanceAfter: 14000},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetTransactions(rr, newRequest("GET", "/api/points/transactions", "", "lawyer-1"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []map[string]any
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "charge", resp[0]["type"])
	assert.Equal(t, "answer_deduction", resp[1]["type"])
}

func TestCreateTopupSessionHandler(t *testing.T) {
	t.Run("Session opened", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CreateTopupSession(gomock.Any(), "lawyer-1", int64(10000)).Return(&session.TopupSession{
			OrderID: "order-1",
			Amount:  10000,
		}, nil)

		rr := httptest.NewRecorder()
		handler.CreateTopupSession(rr, newRequest("POST", "/api/points/topup", `{"amount":10000}`, "lawyer-1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "order-1", resp["order_id"])
		assert.Equal(t, float64(10000), resp["amount"])
		assert.NotEmpty(t, resp["expires_at"])
	})

	t.Run("Amount below minimum", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CreateTopupSession(gomock.Any(), "lawyer-1", int64(500)).Return(nil, pointservice.ErrAmountBelowMinimum)

		rr := httptest.NewRecorder()
		handler.CreateTopupSession(rr, newRequest("POST", "/api/points/topup", `{"amount":500}`, "lawyer-1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Invalid request body", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.CreateTopupSession(rr, newRequest("POST", "/api/points/topup", `{invalid`, "lawyer-1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestConfirmTopupHandler(t *testing.T) {
	body := `{"order_id":"order-1","payment_key":"pay-key-1"}`

	t.Run("Wallet credited", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ConfirmTopup(gomock.Any(), "lawyer-1", "order-1", "pay-key-1").Return(&domain.PointWallet{Balance: 15000}, nil)

		rr := httptest.NewRecorder()
		handler.ConfirmTopup(rr, newRequest("POST", "/api/points/topup/confirm", body, "lawyer-1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, float64(15000), resp["new_balance"])
	})

	t.Run("Session expired", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ConfirmTopup(gomock.Any(), "lawyer-1", "order-1", "pay-key-1").Return(nil, session.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.ConfirmTopup(rr, newRequest("POST", "/api/points/topup/confirm", body, "lawyer-1"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Session owned by someone else", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ConfirmTopup(gomock.Any(), "lawyer-1", "order-1", "pay-key-1").Return(nil, pointservice.ErrSessionMismatch)

		rr := httptest.NewRecorder()
		handler.ConfirmTopup(rr, newRequest("POST", "/api/points/topup/confirm", body, "lawyer-1"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Gateway rejection", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ConfirmTopup(gomock.Any(), "lawyer-1", "order-1", "pay-key-1").Return(nil, payment.ErrConfirmRejected)

		rr := httptest.NewRecorder()
		handler.ConfirmTopup(rr, newRequest("POST", "/api/points/topup/confirm", body, "lawyer-1"))

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		var resp utils.Response
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Payment rejected by gateway", resp.Message)
	})

	t.Run("Missing payment key", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.ConfirmTopup(rr, newRequest("POST", "/api/points/topup/confirm", `{"order_id":"order-1"}`, "lawyer-1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
