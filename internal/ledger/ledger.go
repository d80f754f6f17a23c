// Package ledger computes point wallet mutations as pure state
// transitions. It never touches storage: every operation takes a wallet
// snapshot and returns a new wallet value plus an immutable transaction
// draft, or a typed failure. Persisting the result atomically is the
// caller's job.
package ledger

import (
	"errors"

	"github.com/lexqna/lexqna/internal/domain"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Mutation is the result of a successful ledger operation: the wallet
// after the change and the transaction draft recording it.
type Mutation struct {
	Wallet      domain.PointWallet
	Transaction domain.PointTransaction
}

// DeductForAnswer charges the answer fee from the lawyer's wallet.
// Fails with ErrInvalidAmount if amount <= 0 and ErrInsufficientBalance
// if the wallet cannot cover it; a negative balance is never produced.
func DeductForAnswer(wallet domain.PointWallet, amount int64, questionID, answerID string) (Mutation, error) {
	if amount <= 0 {
		return Mutation{}, ErrInvalidAmount
	}
	if wallet.Balance < amount {
		return Mutation{}, ErrInsufficientBalance
	}

	balanceAfter := wallet.Balance - amount
	return success(wallet, balanceAfter, domain.PointTransaction{
		LawyerUserID:      wallet.LawyerUserID,
		Amount:            amount,
		Type:              domain.TransactionAnswerDeduction,
		RelatedQuestionID: &questionID,
		RelatedAnswerID:   &answerID,
	}), nil
}

// RefundForAnswerDeletion credits back the fee for an answer removed by
// question deletion. There is no upper bound check: refunds are assumed
// bounded by prior deductions, which the caller guarantees by refunding
// only answers it is deleting in the same transaction.
func RefundForAnswerDeletion(wallet domain.PointWallet, amount int64, questionID, answerID string) (Mutation, error) {
	if amount <= 0 {
		return Mutation{}, ErrInvalidAmount
	}

	balanceAfter := wallet.Balance + amount
	return success(wallet, balanceAfter, domain.PointTransaction{
		LawyerUserID:      wallet.LawyerUserID,
		Amount:            amount,
		Type:              domain.TransactionAnswerRefund,
		RelatedQuestionID: &questionID,
		RelatedAnswerID:   &answerID,
	}), nil
}

// ApplyCharge credits a paid top-up. The external payment id is carried
// on the transaction so the caller can run its idempotency check.
func ApplyCharge(wallet domain.PointWallet, amount int64, externalPaymentID string) (Mutation, error) {
	if amount <= 0 {
		return Mutation{}, ErrInvalidAmount
	}

	var extID *string
	if externalPaymentID != "" {
		extID = &externalPaymentID
	}

	balanceAfter := wallet.Balance + amount
	return success(wallet, balanceAfter, domain.PointTransaction{
		LawyerUserID:      wallet.LawyerUserID,
		Amount:            amount,
		Type:              domain.TransactionCharge,
		ExternalPaymentID: extID,
	}), nil
}

func success(wallet domain.PointWallet, balanceAfter int64, tx domain.PointTransaction) Mutation {
	wallet.Balance = balanceAfter
	tx.BalanceAfter = balanceAfter
	return Mutation{
		Wallet:      wallet,
		Transaction: tx,
	}
}
