package ledger

import (
	"testing"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeductForAnswer(t *testing.T) {
	tests := []struct {
		name            string
		wallet          domain.PointWallet
		amount          int64
		expectedErr     error
		expectedBalance int64
	}{
		{
			name:            "Successful deduction",
			wallet:          domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 5000},
			amount:          1000,
			expectedErr:     nil,
			expectedBalance: 4000,
		},
		{
			name:        "Insufficient balance",
			wallet:      domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 500},
			amount:      1000,
			expectedErr: ErrInsufficientBalance,
		},
		{
			name:            "Exact balance drains wallet to zero",
			wallet:          domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 1000},
			amount:          1000,
			expectedErr:     nil,
			expectedBalance: 0,
		},
		{
			name:        "Zero amount",
			wallet:      domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 5000},
			amount:      0,
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "Negative amount",
			wallet:      domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 5000},
			amount:      -100,
			expectedErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutation, err := DeductForAnswer(tt.wallet, tt.amount, "q1", "a1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, mutation.Wallet.Balance)
			assert.Equal(t, domain.TransactionAnswerDeduction, mutation.Transaction.Type)
			assert.Equal(t, tt.expectedBalance, mutation.Transaction.BalanceAfter)
			assert.Equal(t, "q1", *mutation.Transaction.RelatedQuestionID)
			assert.Equal(t, "a1", *mutation.Transaction.RelatedAnswerID)
			assert.Equal(t, tt.wallet.LawyerUserID, mutation.Transaction.LawyerUserID)
			assert.GreaterOrEqual(t, mutation.Wallet.Balance, int64(0))
		})
	}
}

func TestRefundForAnswerDeletion(t *testing.T) {
	tests := []struct {
		name            string
		wallet          domain.PointWallet
		amount          int64
		expectedErr     error
		expectedBalance int64
	}{
		{
			name:            "Successful refund",
			wallet:          domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 4000},
			amount:          1000,
			expectedErr:     nil,
			expectedBalance: 5000,
		},
		{
			name:            "Refund into empty wallet",
			wallet:          domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 0},
			amount:          1000,
			expectedErr:     nil,
			expectedBalance: 1000,
		},
		{
			name:        "Zero amount",
			wallet:      domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 4000},
			amount:      0,
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "Negative amount",
			wallet:      domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 4000},
			amount:      -1,
			expectedErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutation, err := RefundForAnswerDeletion(tt.wallet, tt.amount, "q1", "a1")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, mutation.Wallet.Balance)
			assert.Equal(t, domain.TransactionAnswerRefund, mutation.Transaction.Type)
			assert.Equal(t, tt.expectedBalance, mutation.Transaction.BalanceAfter)
		})
	}
}

func TestApplyCharge(t *testing.T) {
	tests := []struct {
		name              string
		wallet            domain.PointWallet
		amount            int64
		externalPaymentID string
		expectedErr       error
		expectedBalance   int64
	}{
		{
			name:              "Successful charge",
			wallet:            domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 200},
			amount:            10000,
			externalPaymentID: "toss-tx-42",
			expectedErr:       nil,
			expectedBalance:   10200,
		},
		{
			name:            "Charge without external payment id",
			wallet:          domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 0},
			amount:          500,
			expectedErr:     nil,
			expectedBalance: 500,
		},
		{
			name:        "Zero amount",
			wallet:      domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 200},
			amount:      0,
			expectedErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutation, err := ApplyCharge(tt.wallet, tt.amount, tt.externalPaymentID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBalance, mutation.Wallet.Balance)
			assert.Equal(t, domain.TransactionCharge, mutation.Transaction.Type)
			if tt.externalPaymentID != "" {
				assert.Equal(t, tt.externalPaymentID, *mutation.Transaction.ExternalPaymentID)
			} else {
				assert.Nil(t, mutation.Transaction.ExternalPaymentID)
			}
		})
	}
}

func TestDeductRefundRoundTrip(t *testing.T) {
	wallet := domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 5000}

	deducted, err := DeductForAnswer(wallet, 1000, "q1", "a1")
	assert.NoError(t, err)
	assert.Equal(t, int64(4000), deducted.Wallet.Balance)

	refunded, err := RefundForAnswerDeletion(deducted.Wallet, 1000, "q1", "a1")
	assert.NoError(t, err)
	assert.Equal(t, wallet.Balance, refunded.Wallet.Balance)
}

func TestLedgerDoesNotMutateInput(t *testing.T) {
	wallet := domain.PointWallet{LawyerUserID: "lawyer-1", Balance: 5000}

	_, err := DeductForAnswer(wallet, 1000, "q1", "a1")
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), wallet.Balance)
}
