package answerrepo

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

func (r *Repository) Save(ctx context.Context, answer *domain.Answer) error {
	query := `
        INSERT INTO answers (id, question_id, lawyer_user_id, content, status)
        VALUES ($1, $2, $3, $4, $5)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			answer.ID, answer.QuestionID, answer.LawyerUserID, answer.Content, answer.Status)
		if err != nil {
			zap.L().Error("can't save answer", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Answer, error) {
	query := `
        SELECT id, question_id, lawyer_user_id, content, status, created_at, deleted_at
        FROM answers
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var answer domain.Answer
	err := row.Scan(&answer.ID, &answer.QuestionID, &answer.LawyerUserID, &answer.Content,
		&answer.Status, &answer.CreatedAt, &answer.DeletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find answer", zap.Error(err))
		return nil, err
	}
	return &answer, nil
}

func (r *Repository) FindByQuestionID(ctx context.Context, questionID string) ([]domain.Answer, error) {
	query := `
        SELECT id, question_id, lawyer_user_id, content, status, created_at, deleted_at
        FROM answers
        WHERE question_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, questionID)
	if err != nil {
		zap.L().Error("can't get answers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var answer domain.Answer
		err := rows.Scan(&answer.ID, &answer.QuestionID, &answer.LawyerUserID, &answer.Content,
			&answer.Status, &answer.CreatedAt, &answer.DeletedAt)
		if err != nil {
			zap.L().Error("can't scan answer row", zap.Error(err))
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (r *Repository) MarkDeletedByQuestionID(ctx context.Context, questionID string, deletedAt time.Time) error {
	query := `
        UPDATE answers
        SET status = 'deleted', deleted_at = $1
        WHERE question_id = $2 AND status != 'deleted'
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, deletedAt, questionID)
		if err != nil {
			zap.L().Error("can't mark answers deleted", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) MarkAdopted(ctx context.Context, id string) error {
	query := `
        UPDATE answers
        SET status = 'adopted'
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, id)
		if err != nil {
			zap.L().Error("can't mark answer adopted", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
