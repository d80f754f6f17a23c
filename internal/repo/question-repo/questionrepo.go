package questionrepo

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

func (r *Repository) Save(ctx context.Context, question *domain.Question) error {
	query := `
        INSERT INTO questions (id, asker_user_id, title, content, status, is_public)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			question.ID, question.AskerUserID, question.Title, question.Content, question.Status, question.IsPublic)
		if err != nil {
			zap.L().Error("can't save question", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Question, error) {
	query := `
        SELECT id, asker_user_id, title, content, status, is_public, adopted_answer_id, created_at, deleted_at
        FROM questions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var question domain.Question
	err := row.Scan(&question.ID, &question.AskerUserID, &question.Title, &question.Content,
		&question.Status, &question.IsPublic, &question.AdoptedAnswerID, &question.CreatedAt, &question.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find question", zap.Error(err))
		return nil, err
	}
	return &question, nil
}

func (r *Repository) FindPublic(ctx context.Context, limit int) ([]domain.Question, error) {
	query := `
        SELECT id, asker_user_id, title, content, status, is_public, adopted_answer_id, created_at, deleted_at
        FROM questions
        WHERE is_public = TRUE AND deleted_at IS NULL
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get public questions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var question domain.Question
		err := rows.Scan(&question.ID, &question.AskerUserID, &question.Title, &question.Content,
			&question.Status, &question.IsPublic, &question.AdoptedAnswerID, &question.CreatedAt, &question.DeletedAt)
		if err != nil {
			zap.L().Error("can't scan question row", zap.Error(err))
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func (r *Repository) MarkDeleted(ctx context.Context, id string, deletedAt time.Time) error {
	query := `
        UPDATE questions
        SET status = 'deleted', deleted_at = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, deletedAt, id)
		if err != nil {
			zap.L().Error("can't mark question deleted", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Adopt(ctx context.Context, questionID, answerID string) error {
	query := `
        UPDATE questions
        SET status = 'adopted', adopted_answer_id = $1
        WHERE id = $2
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, answerID, questionID)
		if err != nil {
			zap.L().Error("can't adopt answer on question", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
