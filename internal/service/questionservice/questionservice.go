package questionservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/ledger"
	"github.com/lexqna/lexqna/internal/pg"
	"github.com/lexqna/lexqna/internal/policy/qnapolicy"
)

type QuestionRepo interface {
	Save(ctx context.Context, question *domain.Question) error
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	FindPublic(ctx context.Context, limit int) ([]domain.Question, error)
	MarkDeleted(ctx context.Context, id string, deletedAt time.Time) error
	Adopt(ctx context.Context, questionID, answerID string) error
}

type AnswerRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Answer, error)
	FindByQuestionID(ctx context.Context, questionID string) ([]domain.Answer, error)
	MarkDeletedByQuestionID(ctx context.Context, questionID string, deletedAt time.Time) error
	MarkAdopted(ctx context.Context, id string) error
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
	questionRepo     QuestionRepo
	answerRepo       AnswerRepo
	walletRepo       WalletRepo
	transactionRepo  TransactionRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager

	deletionWindow  time.Duration
	refundPerAnswer int64
}

func New(
	questionRepo QuestionRepo,
	answerRepo AnswerRepo,
	walletRepo WalletRepo,
	transactionRepo TransactionRepo,
	notificationRepo NotificationRepo,
	txManager pg.TXManager,
	deletionWindow time.Duration,
	refundPerAnswer int64,
) *Service {
	return &Service{
		questionRepo:     questionRepo,
		answerRepo:       answerRepo,
		walletRepo:       walletRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		deletionWindow:   deletionWindow,
		refundPerAnswer:  refundPerAnswer,
	}
}

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrWalletNotFound   = errors.New("wallet not found")
)

// DeletionBlockedError carries the full policy evaluation so the
// handler can report every violated rule and the refund preview.
type DeletionBlockedError struct {
	Evaluation qnapolicy.DeletionEvaluation
}

func (e *DeletionBlockedError) Error() string {
	return fmt.Sprintf("question deletion blocked: %s", joinDeletionReasons(e.Evaluation.Reasons))
}

// AdoptionBlockedError carries every violated adoption rule.
type AdoptionBlockedError struct {
	Reasons []qnapolicy.AdoptionBlockReason
}

func (e *AdoptionBlockedError) Error() string {
	parts := make([]string, len(e.Reasons))
	for i, reason := range e.Reasons {
		parts[i] = string(reason)
	}
	return fmt.Sprintf("answer adoption blocked: %s", strings.Join(parts, ", "))
}

func joinDeletionReasons(reasons []qnapolicy.DeletionBlockReason) string {
	parts := make([]string, len(reasons))
	for i, reason := range reasons {
		parts[i] = string(reason)
	}
	return strings.Join(parts, ", ")
}

func (s *Service) Create(ctx context.Context, askerUserID, title, content string, isPublic bool) (*domain.Question, error) {
	question := &domain.Question{
		ID:          uuid.NewString(),
		AskerUserID: askerUserID,
		Title:       title,
		Content:     content,
		Status:      domain.QuestionAwaitingAnswer,
		IsPublic:    isPublic,
	}

	if err := s.questionRepo.Save(ctx, question); err != nil {
		zap.L().Error("can't save question: ", zap.Error(err))
		return nil, err
	}
	return question, nil
}

func (s *Service) ListPublic(ctx context.Context, limit int) ([]domain.Question, error) {
	questions, err := s.questionRepo.FindPublic(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get questions", zap.Error(err))
		return nil, err
	}
	return questions, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Question, []domain.Answer, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if question == nil {
		return nil, nil, ErrQuestionNotFound
	}

	answers, err := s.answerRepo.FindByQuestionID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return question, answers, nil
}

// DeleteResult reports what the deletion refunded.
type DeleteResult struct {
	RefundedPoints      int64
	RefundedAnswerCount int
}

// Delete soft-deletes the question and its answers and refunds the fee
// to every lawyer whose active answer is removed, all in one
// transaction. The policy evaluation runs against the snapshot read at
// the start; the transaction makes the decide-then-write step atomic.
func (s *Service) Delete(ctx context.Context, questionID, requesterID string, now time.Time) (*DeleteResult, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	answers, err := s.answerRepo.FindByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	evaluation := qnapolicy.EvaluateQuestionDeletion(*question, answers, requesterID, now, s.deletionWindow, s.refundPerAnswer)
	if !evaluation.CanDelete {
		zap.L().Info("question deletion blocked",
			zap.String("question_id", questionID),
			zap.String("requester_id", requesterID),
			zap.Any("reasons", evaluation.Reasons))
		return nil, &DeletionBlockedError{Evaluation: evaluation}
	}

	var result DeleteResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.questionRepo.MarkDeleted(ctx, questionID, now); err != nil {
			return err
		}
		if err := s.answerRepo.MarkDeletedByQuestionID(ctx, questionID, now); err != nil {
			return err
		}

		for _, answer := range answers {
			if answer.Status == domain.AnswerDeleted {
				continue
			}
			if err := s.refundAnswer(ctx, question, answer); err != nil {
				return err
			}
			result.RefundedPoints += s.refundPerAnswer
			result.RefundedAnswerCount++
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't delete question: ", zap.Error(err))
		return nil, err
	}

	return &result, nil
}

func (s *Service) refundAnswer(ctx context.Context, question *domain.Question, answer domain.Answer) error {
	wallet, err := s.walletRepo.GetWallet(ctx, answer.LawyerUserID)
	if err != nil {
		return err
	}
	if wallet == nil {
		return ErrWalletNotFound
	}

	mutation, err := ledger.RefundForAnswerDeletion(*wallet, s.refundPerAnswer, question.ID, answer.ID)
	if err != nil {
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
		UserID:    answer.LawyerUserID,
		Type:      "answer_refunded",
		Title:     "답변 포인트가 환불되었습니다",
		Message:   "질문이 삭제되어 답변 작성 포인트가 환불되었습니다.",
		RelatedID: &answer.ID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}
	return nil
}

// Adopt marks the answer as the accepted one. The adopted answer id
// snapshot read here is what makes a second adoption impossible under
// the caller's transaction isolation.
func (s *Service) Adopt(ctx context.Context, questionID, answerID, actingUserID string) error {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}

	answer, err := s.answerRepo.FindByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrAnswerNotFound
	}

	evaluation := qnapolicy.CanAdoptAnswer(*question, *answer, actingUserID, question.AdoptedAnswerID)
	if !evaluation.CanAdopt {
		zap.L().Info("answer adoption blocked",
			zap.String("question_id", questionID),
			zap.String("answer_id", answerID),
			zap.Any("reasons", evaluation.Reasons))
		return &AdoptionBlockedError{Reasons: evaluation.Reasons}
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.questionRepo.Adopt(ctx, questionID, answerID); err != nil {
			return err
		}
		if err := s.answerRepo.MarkAdopted(ctx, answerID); err != nil {
			return err
		}

		notification := &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    answer.LawyerUserID,
			Type:      "answer_adopted",
			Title:     "답변이 채택되었습니다",
			Message:   "회원님의 답변이 채택되었습니다.",
			RelatedID: &answerID,
		}
		return s.notificationRepo.Create(ctx, notification)
	})
	if err != nil {
		zap.L().Error("can't adopt answer: ", zap.Error(err))
		return err
	}
	return nil
}
