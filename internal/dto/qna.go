package dto

import "time"

type CreateQuestionRequestDTO struct {
	Title    string `json:"title" validate:"required,max=200" example:"Boundary dispute with a neighbor"`
	Content  string `json:"content" validate:"required,min=10"`
	IsPublic bool   `json:"is_public" example:"true"`
}

type CreateQuestionResponseDTO struct {
	QuestionID string `json:"question_id" example:"7b0a4d1e-3f02-4a26-9c61-2d48f7f1a111"`
}

type QuestionResponseDTO struct {
	QuestionID      string              `json:"question_id"`
	Title           string              `json:"title"`
	Content         string              `json:"content"`
	Status          string              `json:"status" example:"awaiting_answer"`
	IsPublic        bool                `json:"is_public"`
	AdoptedAnswerID *string             `json:"adopted_answer_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	Answers         []AnswerResponseDTO `json:"answers,omitempty"`
}

type AnswerResponseDTO struct {
	AnswerID  string    `json:"answer_id"`
	Status    string    `json:"status" example:"submitted"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteQuestionResponseDTO struct {
	RefundedPoints      int64 `json:"refunded_points" example:"2000"`
	RefundedAnswerCount int   `json:"refunded_answer_count" example:"2"`
}

type SubmitAnswerRequestDTO struct {
	Content string `json:"content" validate:"required,min=200,max=5000"`
}

type SubmitAnswerResponseDTO struct {
	AnswerID         string `json:"answer_id"`
	DeductedPoints   int64  `json:"deducted_points" example:"1000"`
	RemainingBalance int64  `json:"remaining_balance" example:"4000"`
}

type AdoptAnswerRequestDTO struct {
	AnswerID string `json:"answer_id" validate:"required"`
}

type AdoptAnswerResponseDTO struct {
	AdoptedAnswerID string `json:"adopted_answer_id"`
}
