package userrepo

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

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, password_hash, role, created_at
        FROM users
        WHERE email = $1
    `
	row := r.db.QueryRow(ctx, query, email)
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, email, password_hash, role, created_at
    `
	row := r.db.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash, user.Role)
	var created domain.User
	err := row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.Role, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) CreateLawyerProfile(ctx context.Context, profile *domain.LawyerProfile) error {
	query := `
        INSERT INTO lawyer_profiles (user_id, full_name, bar_number, verification_status)
        VALUES ($1, $2, $3, $4)
    `
	_, err := r.db.Exec(ctx, query, profile.UserID, profile.FullName, profile.BarNumber, profile.VerificationStatus)
	if err != nil {
		zap.L().Error("can't create lawyer profile", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindLawyerProfile(ctx context.Context, userID string) (*domain.LawyerProfile, error) {
	query := `
        SELECT user_id, full_name, bar_number, verification_status, created_at
        FROM lawyer_profiles
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var profile domain.LawyerProfile
	err := row.Scan(&profile.UserID, &profile.FullName, &profile.BarNumber, &profile.VerificationStatus, &profile.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find lawyer profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) FindLawyerProfileByBarNumber(ctx context.Context, barNumber string) (*domain.LawyerProfile, error) {
	query := `
        SELECT user_id, full_name, bar_number, verification_status, created_at
        FROM lawyer_profiles
        WHERE bar_number = $1
    `
	row := r.db.QueryRow(ctx, query, barNumber)
	var profile domain.LawyerProfile
	err := row.Scan(&profile.UserID, &profile.FullName, &profile.BarNumber, &profile.VerificationStatus, &profile.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find lawyer profile by bar number", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) UpdateVerificationStatus(ctx context.Context, userID string, status domain.VerificationStatus) error {
	query := `
        UPDATE lawyer_profiles
        SET verification_status = $1
        WHERE user_id = $2
    `
	_, err := r.db.Exec(ctx, query, status, userID)
	if err != nil {
		zap.L().Error("can't update verification status", zap.Error(err))
		return err
	}
	return nil
}
