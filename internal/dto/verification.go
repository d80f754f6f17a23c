package dto

import "time"

type SubmitVerificationRequestDTO struct {
	Documents []string `json:"documents" validate:"required,min=1"`
	Message   string   `json:"message,omitempty"`
}

type SubmitVerificationResponseDTO struct {
	RequestID string `json:"request_id"`
}

type VerificationRequestDTO struct {
	RequestID    string     `json:"request_id"`
	LawyerUserID string     `json:"lawyer_user_id"`
	Status       string     `json:"status" example:"in_review"`
	Documents    []string   `json:"documents"`
	Message      string     `json:"message,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
}

type VerificationListResponseDTO struct {
	Requests []VerificationRequestDTO `json:"requests"`
	Total    int                      `json:"total"`
}

type DecideVerificationRequestDTO struct {
	Decision     string `json:"decision" validate:"required,oneof=approve reject" example:"approve"`
	AdminComment string `json:"admin_comment,omitempty"`
}

type DecideVerificationResponseDTO struct {
	RequestID  string `json:"request_id"`
	NextStatus string `json:"next_status" example:"approved"`
}
