package pointservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/ledger"
	"github.com/lexqna/lexqna/internal/payment"
	"github.com/lexqna/lexqna/internal/pg"
	"github.com/lexqna/lexqna/internal/session"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, lawyerUserID string) (*domain.PointWallet, error)
	UpdateWallet(ctx context.Context, wallet *domain.PointWallet) (*domain.PointWallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error)
	FindByLawyerUserID(ctx context.Context, lawyerUserID string) ([]domain.PointTransaction, error)
	FindByExternalPaymentID(ctx context.Context, externalPaymentID string) (*domain.PointTransaction, error)
}

type SessionStore interface {
	Create(ctx context.Context, sess session.TopupSession) error
	Get(ctx context.Context, orderID string) (*session.TopupSession, error)
	Delete(ctx context.Context, orderID string) error
}

type PaymentClient interface {
	Confirm(paymentKey, orderID string, amount int64) (*payment.Confirmation, error)
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	sessions        SessionStore
	payments        PaymentClient
	txManager       pg.TXManager

	minChargeAmount int64
}

func New(
	walletRepo WalletRepo,
	transactionRepo TransactionRepo,
	sessions SessionStore,
	payments PaymentClient,
	txManager pg.TXManager,
	minChargeAmount int64,
) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		sessions:        sessions,
		payments:        payments,
		txManager:       txManager,
		minChargeAmount: minChargeAmount,
	}
}

var (
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrAmountBelowMinimum = errors.New("charge amount below minimum")
	ErrSessionMismatch    = errors.New("confirmation does not match the started session")
)

func (s *Service) GetBalance(ctx context.Context, lawyerUserID string) (*domain.PointWallet, error) {
	wallet, err := s.walletRepo.GetWallet(ctx, lawyerUserID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) GetTransactions(ctx context.Context, lawyerUserID string) ([]domain.PointTransaction, error) {
	return s.transactionRepo.FindByLawyerUserID(ctx, lawyerUserID)
}

// CreateTopupSession starts a charge: it validates the amount and
// parks a session in Redis keyed by a fresh order id. The wallet is
// untouched until the gateway confirms.
func (s *Service) CreateTopupSession(ctx context.Context, lawyerUserID string, amount int64) (*session.TopupSession, error) {
	if amount < s.minChargeAmount {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrAmountBelowMinimum, amount, s.minChargeAmount)
	}

	wallet, err := s.walletRepo.GetWallet(ctx, lawyerUserID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	sess := session.TopupSession{
		OrderID:      uuid.NewString(),
		LawyerUserID: lawyerUserID,
		Amount:       amount,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		zap.L().Error("can't create topup session: ", zap.Error(err))
		return nil, err
	}
	return &sess, nil
}

// ConfirmTopup finishes a charge. A payment key already recorded in
// the ledger is treated as an idempotent replay and credited exactly
// once.
func (s *Service) ConfirmTopup(ctx context.Context, lawyerUserID, orderID, paymentKey string) (*domain.PointWallet, error) {
	sess, err := s.sessions.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if sess.LawyerUserID != lawyerUserID {
		return nil, ErrSessionMismatch
	}

	existing, err := s.transactionRepo.FindByExternalPaymentID(ctx, paymentKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("duplicate payment confirmation ignored",
			zap.String("payment_key", paymentKey),
			zap.String("order_id", orderID))
		return s.GetBalance(ctx, lawyerUserID)
	}

	confirmation, err := s.payments.Confirm(paymentKey, orderID, sess.Amount)
	if err != nil {
		return nil, err
	}

	var credited *domain.PointWallet
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		wallet, err := s.walletRepo.GetWallet(ctx, lawyerUserID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		mutation, err := ledger.ApplyCharge(*wallet, confirmation.Amount, confirmation.PaymentKey)
		if err != nil {
			return err
		}

		credited, err = s.walletRepo.UpdateWallet(ctx, &mutation.Wallet)
		if err != nil {
			return err
		}
		mutation.Transaction.ID = uuid.NewString()
		_, err = s.transactionRepo.Create(ctx, &mutation.Transaction)
		return err
	})
	if err != nil {
		zap.L().Error("can't confirm topup: ", zap.Error(err))
		return nil, err
	}

	if err := s.sessions.Delete(ctx, orderID); err != nil {
		zap.L().Warn("can't delete topup session: ", zap.Error(err))
	}
	return credited, nil
}
