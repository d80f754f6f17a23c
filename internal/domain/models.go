package domain

import "time"

type Role string

const (
	RoleAsker  Role = "asker"
	RoleLawyer Role = "lawyer"
	RoleAdmin  Role = "admin"
)

type QuestionStatus string

const (
	// QuestionAwaitingAnswer вопрос открыт, ответы принимаются;
	QuestionAwaitingAnswer QuestionStatus = "awaiting_answer"
	// QuestionAdopted автор вопроса принял один из ответов;
	QuestionAdopted QuestionStatus = "adopted"
	// QuestionDeleted вопрос удалён автором;
	QuestionDeleted QuestionStatus = "deleted"
)

type AnswerStatus string

const (
	AnswerSubmitted AnswerStatus = "submitted"
	AnswerAdopted   AnswerStatus = "adopted"
	AnswerDeleted   AnswerStatus = "deleted"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationInReview VerificationStatus = "in_review"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type TransactionType string

const (
	TransactionCharge          TransactionType = "charge"
	TransactionAnswerDeduction TransactionType = "answer_deduction"
	TransactionAnswerRefund    TransactionType = "answer_refund"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Question struct {
	ID              string         `db:"id"`
	AskerUserID     string         `db:"asker_user_id"`
	Title           string         `db:"title"`
	Content         string         `db:"content"`
	Status          QuestionStatus `db:"status"`
	IsPublic        bool           `db:"is_public"`
	AdoptedAnswerID *string        `db:"adopted_answer_id"`
	CreatedAt       time.Time      `db:"created_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}

type Answer struct {
	ID           string       `db:"id"`
	QuestionID   string       `db:"question_id"`
	LawyerUserID string       `db:"lawyer_user_id"`
	Content      string       `db:"content"`
	Status       AnswerStatus `db:"status"`
	CreatedAt    time.Time    `db:"created_at"`
	DeletedAt    *time.Time   `db:"deleted_at"`
}

type LawyerProfile struct {
	UserID             string             `db:"user_id"`
	FullName           string             `db:"full_name"`
	BarNumber          string             `db:"bar_number"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	CreatedAt          time.Time          `db:"created_at"`
}

// PointWallet mutated exclusively through the ledger engine,
// balance is never negative at rest.
type PointWallet struct {
	LawyerUserID string `db:"lawyer_user_id"`
	Balance      int64  `db:"balance"`
}

// PointTransaction is append-only, never updated after insert.
type PointTransaction struct {
	ID                string          `db:"id"`
	LawyerUserID      string          `db:"lawyer_user_id"`
	Amount            int64           `db:"amount"`
	Type              TransactionType `db:"type"`
	BalanceAfter      int64           `db:"balance_after"`
	RelatedQuestionID *string         `db:"related_question_id"`
	RelatedAnswerID   *string         `db:"related_answer_id"`
	ExternalPaymentID *string         `db:"external_payment_id"`
	CreatedAt         time.Time       `db:"created_at"`
}

type VerificationRequest struct {
	ID           string             `db:"id"`
	LawyerUserID string             `db:"lawyer_user_id"`
	Status       VerificationStatus `db:"status"`
	Documents    []string           `db:"documents"`
	Message      string             `db:"message"`
	SubmittedAt  time.Time          `db:"submitted_at"`
	ReviewedAt   *time.Time         `db:"reviewed_at"`
	AdminComment *string            `db:"admin_comment"`
}

type Notification struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	RelatedID *string   `db:"related_id"`
	Delivered bool      `db:"delivered"`
	CreatedAt time.Time `db:"created_at"`
}
