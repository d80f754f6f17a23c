// Package qnapolicy decides whether Q&A state transitions are allowed.
// All functions are pure: they evaluate immutable snapshots supplied by
// the caller and collect every violated rule instead of stopping at the
// first, so handlers can surface complete diagnostics.
package qnapolicy

import (
	"time"

	"github.com/lexqna/lexqna/internal/domain"
)

type DeletionBlockReason string

const (
	DeletionNotOwner      DeletionBlockReason = "NOT_OWNER"
	DeletionNotDeletable  DeletionBlockReason = "QUESTION_NOT_DELETABLE"
	DeletionWindowExpired DeletionBlockReason = "WINDOW_EXPIRED"
)

type SubmissionBlockReason string

const (
	SubmissionLawyerNotApproved   SubmissionBlockReason = "LAWYER_NOT_APPROVED"
	SubmissionInsufficientBalance SubmissionBlockReason = "INSUFFICIENT_BALANCE"
	SubmissionQuestionNotPublic   SubmissionBlockReason = "QUESTION_NOT_PUBLIC"
	SubmissionQuestionNotOpen     SubmissionBlockReason = "QUESTION_NOT_OPEN"
)

type AdoptionBlockReason string

const (
	AdoptionNotOwner       AdoptionBlockReason = "NOT_OWNER"
	AdoptionNotAdoptable   AdoptionBlockReason = "QUESTION_NOT_ADOPTABLE"
	AdoptionAlreadyAdopted AdoptionBlockReason = "ALREADY_ADOPTED"
	AdoptionAnswerMismatch AdoptionBlockReason = "ANSWER_MISMATCH"
)

type DeletionEvaluation struct {
	CanDelete             bool
	RefundableAnswerCount int
	RefundableAmount      int64
	Remaining             time.Duration
	Reasons               []DeletionBlockReason
}

// EvaluateQuestionDeletion checks whether requesterID may delete the
// question at time now given the deletion window. The refund preview
// and the remaining window are computed even when deletion is blocked
// so the caller can always display them.
func EvaluateQuestionDeletion(
	question domain.Question,
	answers []domain.Answer,
	requesterID string,
	now time.Time,
	window time.Duration,
	refundPerAnswer int64,
) DeletionEvaluation {
	var reasons []DeletionBlockReason

	if question.AskerUserID != requesterID {
		reasons = append(reasons, DeletionNotOwner)
	}

	isDeleted := question.Status == domain.QuestionDeleted || question.DeletedAt != nil
	if question.Status != domain.QuestionAwaitingAnswer || isDeleted {
		reasons = append(reasons, DeletionNotDeletable)
	}

	elapsed := now.Sub(question.CreatedAt)
	remaining := window - elapsed
	if elapsed < 0 {
		remaining = window
	}
	if remaining < 0 {
		remaining = 0
	}
	if elapsed > window {
		reasons = append(reasons, DeletionWindowExpired)
	}

	refundableCount := 0
	for _, answer := range answers {
		if answer.Status != domain.AnswerDeleted {
			refundableCount++
		}
	}

	return DeletionEvaluation{
		CanDelete:             len(reasons) == 0,
		RefundableAnswerCount: refundableCount,
		RefundableAmount:      int64(refundableCount) * refundPerAnswer,
		Remaining:             remaining,
		Reasons:               reasons,
	}
}

type SubmissionEvaluation struct {
	CanSubmit bool
	Reasons   []SubmissionBlockReason
}

// CanSubmitAnswer checks whether the lawyer may answer the question.
// minimumBalance is the answer fee the wallet must cover.
func CanSubmitAnswer(lawyer domain.LawyerProfile, balance int64, question domain.Question, minimumBalance int64) SubmissionEvaluation {
	var reasons []SubmissionBlockReason

	if lawyer.VerificationStatus != domain.VerificationApproved {
		reasons = append(reasons, SubmissionLawyerNotApproved)
	}
	if balance < minimumBalance {
		reasons = append(reasons, SubmissionInsufficientBalance)
	}
	if !question.IsPublic {
		reasons = append(reasons, SubmissionQuestionNotPublic)
	}
	if question.Status != domain.QuestionAwaitingAnswer || question.DeletedAt != nil {
		reasons = append(reasons, SubmissionQuestionNotOpen)
	}

	return SubmissionEvaluation{
		CanSubmit: len(reasons) == 0,
		Reasons:   reasons,
	}
}

type AdoptionEvaluation struct {
	CanAdopt bool
	Reasons  []AdoptionBlockReason
}

// CanAdoptAnswer checks whether actingUserID may adopt the answer.
// Any prior adoption blocks a second one, including re-adopting the
// same answer.
func CanAdoptAnswer(question domain.Question, answer domain.Answer, actingUserID string, alreadyAdoptedAnswerID *string) AdoptionEvaluation {
	var reasons []AdoptionBlockReason

	if question.AskerUserID != actingUserID {
		reasons = append(reasons, AdoptionNotOwner)
	}

	isDeleted := question.Status == domain.QuestionDeleted || question.DeletedAt != nil
	if isDeleted || question.Status != domain.QuestionAwaitingAnswer {
		reasons = append(reasons, AdoptionNotAdoptable)
	}

	if alreadyAdoptedAnswerID != nil {
		reasons = append(reasons, AdoptionAlreadyAdopted)
	}

	if answer.QuestionID != question.ID || answer.Status == domain.AnswerDeleted {
		reasons = append(reasons, AdoptionAnswerMismatch)
	}

	return AdoptionEvaluation{
		CanAdopt: len(reasons) == 0,
		Reasons:  reasons,
	}
}
