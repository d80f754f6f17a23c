package notificationrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, notification *domain.Notification) error {
	query := `
        INSERT INTO notifications (id, user_id, type, title, message, related_id)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		notification.ID, notification.UserID, notification.Type,
		notification.Title, notification.Message, notification.RelatedID)
	if err != nil {
		zap.L().Error("can't save notification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUndelivered(ctx context.Context, limit uint32) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, type, title, message, related_id, delivered, created_at
        FROM notifications
        WHERE delivered = FALSE
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get undelivered notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		err := rows.Scan(&notification.ID, &notification.UserID, &notification.Type,
			&notification.Title, &notification.Message, &notification.RelatedID,
			&notification.Delivered, &notification.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, notification)
	}
	return notifications, nil
}

func (r *Repository) MarkDelivered(ctx context.Context, id string) error {
	query := `
        UPDATE notifications
        SET delivered = TRUE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't mark notification delivered", zap.Error(err))
		return err
	}
	return nil
}
