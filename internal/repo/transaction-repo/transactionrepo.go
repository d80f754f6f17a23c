package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error) {
	query := `
        INSERT INTO point_transactions
            (id, lawyer_user_id, amount, type, balance_after, related_question_id, related_answer_id, external_payment_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		tx.ID, tx.LawyerUserID, tx.Amount, tx.Type, tx.BalanceAfter,
		tx.RelatedQuestionID, tx.RelatedAnswerID, tx.ExternalPaymentID).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save point transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByLawyerUserID(ctx context.Context, lawyerUserID string) ([]domain.PointTransaction, error) {
	query := `
        SELECT id, lawyer_user_id, amount, type, balance_after, related_question_id, related_answer_id, external_payment_id, created_at
        FROM point_transactions
        WHERE lawyer_user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, lawyerUserID)
	if err != nil {
		zap.L().Error("failed to fetch point transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.PointTransaction
	for rows.Next() {
		var tx domain.PointTransaction
		err := rows.Scan(&tx.ID, &tx.LawyerUserID, &tx.Amount, &tx.Type, &tx.BalanceAfter,
			&tx.RelatedQuestionID, &tx.RelatedAnswerID, &tx.ExternalPaymentID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan point transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func (r *Repository) FindByExternalPaymentID(ctx context.Context, externalPaymentID string) (*domain.PointTransaction, error) {
	query := `
        SELECT id, lawyer_user_id, amount, type, balance_after, related_question_id, related_answer_id, external_payment_id, created_at
        FROM point_transactions
        WHERE external_payment_id = $1
    `
	row := r.db.QueryRow(ctx, query, externalPaymentID)
	var tx domain.PointTransaction
	err := row.Scan(&tx.ID, &tx.LawyerUserID, &tx.Amount, &tx.Type, &tx.BalanceAfter,
		&tx.RelatedQuestionID, &tx.RelatedAnswerID, &tx.ExternalPaymentID, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction by external payment id", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}
