// Package verifypolicy gates the lawyer credential review lifecycle:
// pending → in_review → approved | rejected. A rejected lawyer may
// resubmit; approved is terminal.
package verifypolicy

import "github.com/lexqna/lexqna/internal/domain"

type UploadBlockReason string

const (
	UploadAlreadyInReview UploadBlockReason = "ALREADY_IN_REVIEW"
	UploadAlreadyApproved UploadBlockReason = "ALREADY_APPROVED"
)

type DecisionFailureReason string

const DecisionNotInReview DecisionFailureReason = "NOT_IN_REVIEW"

type DecisionAction string

const (
	ActionApprove DecisionAction = "approve"
	ActionReject  DecisionAction = "reject"
)

type UploadEligibility struct {
	CanUpload bool
	Reason    UploadBlockReason
}

// EvaluateUploadEligibility reports whether a lawyer with the given
// verification status may upload documents and submit a review request.
func EvaluateUploadEligibility(status domain.VerificationStatus) UploadEligibility {
	switch status {
	case domain.VerificationInReview:
		return UploadEligibility{CanUpload: false, Reason: UploadAlreadyInReview}
	case domain.VerificationApproved:
		return UploadEligibility{CanUpload: false, Reason: UploadAlreadyApproved}
	default:
		return UploadEligibility{CanUpload: true}
	}
}

type AdminDecision struct {
	OK         bool
	NextStatus domain.VerificationStatus
	Reason     DecisionFailureReason
}

// EvaluateAdminDecision validates an approve/reject action against the
// current review status. Only in_review requests can be decided; a
// terminal request cannot be re-decided through this function.
func EvaluateAdminDecision(currentStatus domain.VerificationStatus, action DecisionAction) AdminDecision {
	if currentStatus != domain.VerificationInReview {
		return AdminDecision{OK: false, Reason: DecisionNotInReview}
	}

	next := domain.VerificationRejected
	if action == ActionApprove {
		next = domain.VerificationApproved
	}
	return AdminDecision{OK: true, NextStatus: next}
}
