package dto

import "time"

type BalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"5000"`
}

type TransactionResponseDTO struct {
	TransactionID     string    `json:"transaction_id"`
	Amount            int64     `json:"amount" example:"1000"`
	Type              string    `json:"type" example:"answer_deduction"`
	BalanceAfter      int64     `json:"balance_after" example:"4000"`
	RelatedQuestionID *string   `json:"related_question_id,omitempty"`
	RelatedAnswerID   *string   `json:"related_answer_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type CreateTopupSessionRequestDTO struct {
	Amount int64 `json:"amount" validate:"required,min=10000" example:"10000"`
}

type CreateTopupSessionResponseDTO struct {
	OrderID   string    `json:"order_id" example:"ORDER-1717243200-lawyer-1"`
	Amount    int64     `json:"amount" example:"10000"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ConfirmTopupRequestDTO struct {
	PaymentKey string `json:"payment_key" validate:"required"`
	OrderID    string `json:"order_id" validate:"required"`
	Amount     int64  `json:"amount" validate:"required" example:"10000"`
}

type ConfirmTopupResponseDTO struct {
	NewBalance int64 `json:"new_balance" example:"15000"`
}
