package verificationservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/pg"
	"github.com/lexqna/lexqna/internal/policy/verifypolicy"
)

type LawyerRepo interface {
	FindLawyerProfile(ctx context.Context, userID string) (*domain.LawyerProfile, error)
	UpdateVerificationStatus(ctx context.Context, userID string, status domain.VerificationStatus) error
}

type VerificationRepo interface {
	Create(ctx context.Context, request *domain.VerificationRequest) error
	FindByID(ctx context.Context, id string) (*domain.VerificationRequest, error)
	FindAll(ctx context.Context) ([]domain.VerificationRequest, error)
	UpdateDecision(ctx context.Context, id string, status domain.VerificationStatus, reviewedAt time.Time, adminComment string) error
}

type NotificationRepo interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

type Service struct {
	lawyerRepo       LawyerRepo
	verificationRepo VerificationRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
}

func New(
	lawyerRepo LawyerRepo,
	verificationRepo VerificationRepo,
	notificationRepo NotificationRepo,
	txManager pg.TXManager,
) *Service {
	return &Service{
		lawyerRepo:       lawyerRepo,
		verificationRepo: verificationRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

var (
	ErrLawyerNotFound  = errors.New("lawyer profile not found")
	ErrRequestNotFound = errors.New("verification request not found")
)

// UploadBlockedError is returned when the lawyer's current verification
// status forbids a new submission.
type UploadBlockedError struct {
	Reason verifypolicy.UploadBlockReason
}

func (e *UploadBlockedError) Error() string {
	return "verification submission blocked: " + string(e.Reason)
}

// DecisionRejectedError is returned when an admin decision targets a
// request that is not in review.
type DecisionRejectedError struct {
	Reason verifypolicy.DecisionFailureReason
}

func (e *DecisionRejectedError) Error() string {
	return "verification decision rejected: " + string(e.Reason)
}

// Submit files a credential review request. Pending and rejected
// lawyers may submit; a resubmission after rejection starts a fresh
// request.
func (s *Service) Submit(ctx context.Context, lawyerUserID string, documents []string, message string) (*domain.VerificationRequest, error) {
	lawyer, err := s.lawyerRepo.FindLawyerProfile(ctx, lawyerUserID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, ErrLawyerNotFound
	}

	eligibility := verifypolicy.EvaluateUploadEligibility(lawyer.VerificationStatus)
	if !eligibility.CanUpload {
		return nil, &UploadBlockedError{Reason: eligibility.Reason}
	}

	request := &domain.VerificationRequest{
		ID:           uuid.NewString(),
		LawyerUserID: lawyerUserID,
		Status:       domain.VerificationInReview,
		Documents:    documents,
		Message:      message,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.verificationRepo.Create(ctx, request); err != nil {
			return err
		}
		return s.lawyerRepo.UpdateVerificationStatus(ctx, lawyerUserID, domain.VerificationInReview)
	})
	if err != nil {
		zap.L().Error("can't submit verification request: ", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (s *Service) List(ctx context.Context) ([]domain.VerificationRequest, error) {
	return s.verificationRepo.FindAll(ctx)
}

// Decide applies an admin approve/reject to an in-review request. The
// request row, the lawyer's profile status and the notification are
// written in one transaction.
func (s *Service) Decide(ctx context.Context, requestID string, action verifypolicy.DecisionAction, adminComment string) (*domain.VerificationRequest, error) {
	request, err := s.verificationRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	decision := verifypolicy.EvaluateAdminDecision(request.Status, action)
	if !decision.OK {
		return nil, &DecisionRejectedError{Reason: decision.Reason}
	}

	now := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.verificationRepo.UpdateDecision(ctx, requestID, decision.NextStatus, now, adminComment); err != nil {
			return err
		}
		if err := s.lawyerRepo.UpdateVerificationStatus(ctx, request.LawyerUserID, decision.NextStatus); err != nil {
			return err
		}

		notification := &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    request.LawyerUserID,
			Type:      "verification_decided",
			Title:     "변호사 인증 심사 결과 안내",
			Message:   decisionMessage(decision.NextStatus),
			RelatedID: &request.ID,
		}
		return s.notificationRepo.Create(ctx, notification)
	})
	if err != nil {
		zap.L().Error("can't decide verification request: ", zap.Error(err))
		return nil, err
	}

	request.Status = decision.NextStatus
	request.ReviewedAt = &now
	request.AdminComment = &adminComment
	return request, nil
}

func decisionMessage(status domain.VerificationStatus) string {
	if status == domain.VerificationApproved {
		return "변호사 인증이 승인되었습니다. 이제 답변을 작성할 수 있습니다."
	}
	return "변호사 인증이 반려되었습니다. 서류를 확인 후 다시 제출해 주세요."
}
