package verificationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Create(ctx context.Context, request *domain.VerificationRequest) error {
	query := `
        INSERT INTO verification_requests (id, lawyer_user_id, status, documents, message)
        VALUES ($1, $2, $3, $4, $5)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			request.ID, request.LawyerUserID, request.Status, request.Documents, request.Message)
		if err != nil {
			zap.L().Error("can't create verification request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.VerificationRequest, error) {
	query := `
        SELECT id, lawyer_user_id, status, documents, message, submitted_at, reviewed_at, admin_comment
        FROM verification_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var request domain.VerificationRequest
	err := row.Scan(&request.ID, &request.LawyerUserID, &request.Status, &request.Documents,
		&request.Message, &request.SubmittedAt, &request.ReviewedAt, &request.AdminComment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find verification request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.VerificationRequest, error) {
	query := `
        SELECT id, lawyer_user_id, status, documents, message, submitted_at, reviewed_at, admin_comment
        FROM verification_requests
        ORDER BY submitted_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get verification requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.VerificationRequest
	for rows.Next() {
		var request domain.VerificationRequest
		err := rows.Scan(&request.ID, &request.LawyerUserID, &request.Status, &request.Documents,
			&request.Message, &request.SubmittedAt, &request.ReviewedAt, &request.AdminComment)
		if err != nil {
			zap.L().Error("can't scan verification request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, nil
}

func (r *Repository) UpdateDecision(ctx context.Context, id string, status domain.VerificationStatus, reviewedAt time.Time, adminComment string) error {
	query := `
        UPDATE verification_requests
        SET status = $1, reviewed_at = $2, admin_comment = $3
        WHERE id = $4
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, status, reviewedAt, adminComment, id)
		if err != nil {
			zap.L().Error("can't update verification request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
