package answerservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/ledger"
	"github.com/lexqna/lexqna/internal/pg"
	"github.com/lexqna/lexqna/internal/policy/qnapolicy"
)

type LawyerRepo interface {
	FindLawyerProfile(ctx context.Context, userID string) (*domain.LawyerProfile, error)
}

type QuestionRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Question, error)
}

type AnswerRepo interface {
	Save(ctx context.Context, answer *domain.Answer) error
}

type WalletRepo interface {
	GetWallet(ctx context.Context, lawyerUserID string) (*domain.PointWallet, error)
	UpdateWallet(ctx context.Context, wallet *domain.PointWallet) (*domain.PointWallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

type Service struct {
	lawyerRepo       LawyerRepo
	questionRepo     QuestionRepo
	answerRepo       AnswerRepo
	walletRepo       WalletRepo
	transactionRepo  TransactionRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager

	answerCost int64
}

func New(
	lawyerRepo LawyerRepo,
	questionRepo QuestionRepo,
	answerRepo AnswerRepo,
	walletRepo WalletRepo,
	transactionRepo TransactionRepo,
	notificationRepo NotificationRepo,
	txManager pg.TXManager,
	answerCost int64,
) *Service {
	return &Service{
		lawyerRepo:       lawyerRepo,
		questionRepo:     questionRepo,
		answerRepo:       answerRepo,
		walletRepo:       walletRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		answerCost:       answerCost,
	}
}

var (
	ErrLawyerNotFound   = errors.New("lawyer profile not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrWalletNotFound   = errors.New("wallet not found")
)

// SubmissionBlockedError carries every violated submission rule.
type SubmissionBlockedError struct {
	Reasons []qnapolicy.SubmissionBlockReason
}

func (e *SubmissionBlockedError) Error() string {
	parts := make([]string, len(e.Reasons))
	for i, reason := range e.Reasons {
		parts[i] = string(reason)
	}
	return fmt.Sprintf("answer submission blocked: %s", strings.Join(parts, ", "))
}

// SubmitResult reports the created answer and the wallet after the fee.
type SubmitResult struct {
	Answer           *domain.Answer
	DeductedPoints   int64
	RemainingBalance int64
}

// Submit stores the answer and deducts the fee in one transaction. The
// fee amount doubles as the minimum balance the submission policy
// checks, so a passing policy guarantees the deduction cannot fail on
// balance.
func (s *Service) Submit(ctx context.Context, questionID, lawyerUserID, content string) (*SubmitResult, error) {
	lawyer, err := s.lawyerRepo.FindLawyerProfile(ctx, lawyerUserID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}

	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	wallet, err := s.walletRepo.GetWallet(ctx, lawyerUserID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	evaluation := qnapolicy.CanSubmitAnswer(*lawyer, wallet.Balance, *question, s.answerCost)
	if !evaluation.CanSubmit {
		zap.L().Info("answer submission blocked",
			zap.String("question_id", questionID),
			zap.String("lawyer_user_id", lawyerUserID),
			zap.Any("reasons", evaluation.Reasons))
		return nil, &SubmissionBlockedError{Reasons: evaluation.Reasons}
	}

	answer := &domain.Answer{
		ID:           uuid.NewString(),
		QuestionID:   questionID,
		LawyerUserID: lawyerUserID,
		Content:      content,
		Status:       domain.AnswerSubmitted,
	}

	mutation, err := ledger.DeductForAnswer(*wallet, s.answerCost, questionID, answer.ID)
	if err != nil {
		zap.L().Error("can't deduct answer fee: ", zap.Error(err))
		return nil, err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.answerRepo.Save(ctx, answer); err != nil {
			return err
		}
		if _, err := s.walletRepo.UpdateWallet(ctx, &mutation.Wallet); err != nil {
			return err
		}
		mutation.Transaction.ID = uuid.NewString()
		if _, err := s.transactionRepo.Create(ctx, &mutation.Transaction); err != nil {
			return err
		}

		notification := &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    question.AskerUserID,
			Type:      "answer_received",
			Title:     "새로운 답변이 도착했습니다",
			Message:   "변호사가 회원님의 질문에 답변을 작성했습니다.",
			RelatedID: &answer.ID,
		}
		return s.notificationRepo.Create(ctx, notification)
	})
	if err != nil {
		zap.L().Error("can't submit answer: ", zap.Error(err))
		return nil, err
	}

	return &SubmitResult{
		Answer:           answer,
		DeductedPoints:   s.answerCost,
		RemainingBalance: mutation.Wallet.Balance,
	}, nil
}
