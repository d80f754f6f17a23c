package walletrepo

import (
	"context"
	"errors"

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

func (r *Repository) GetWallet(ctx context.Context, lawyerUserID string) (*domain.PointWallet, error) {
	query := `
        SELECT lawyer_user_id, balance
        FROM point_wallets
        WHERE lawyer_user_id = $1
    `
	row := r.db.QueryRow(ctx, query, lawyerUserID)
	var wallet domain.PointWallet
	err := row.Scan(&wallet.LawyerUserID, &wallet.Balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) CreateWallet(ctx context.Context, lawyerUserID string) (*domain.PointWallet, error) {
	query := `
        INSERT INTO point_wallets (lawyer_user_id, balance)
        VALUES ($1, 0)
        RETURNING lawyer_user_id, balance
    `
	row := r.db.QueryRow(ctx, query, lawyerUserID)
	var wallet domain.PointWallet
	err := row.Scan(&wallet.LawyerUserID, &wallet.Balance)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) UpdateWallet(ctx context.Context, wallet *domain.PointWallet) (*domain.PointWallet, error) {
	var updated domain.PointWallet
	query := `
        UPDATE point_wallets
        SET balance = $1
        WHERE lawyer_user_id = $2
        RETURNING lawyer_user_id, balance
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, wallet.Balance, wallet.LawyerUserID)
		err := row.Scan(&updated.LawyerUserID, &updated.Balance)
		if err != nil {
			zap.L().Error("failed to update wallet", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}
