// Package notify drains undelivered notifications to an external
// webhook on a fixed interval.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lexqna/lexqna/internal/config"
	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// inFlight guards against the same notification being queued by two
// overlapping ticks.
var inFlight sync.Map

type NotificationRepo interface {
	FindUndelivered(ctx context.Context, limit uint32) ([]domain.Notification, error)
	MarkDelivered(ctx context.Context, id string) error
}

type webhookPayload struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Dispatcher struct {
	webhookURL   string
	repo         NotificationRepo
	client       clients.HTTPClientI
	limit        uint32
	pool         *deliveryPool
	pollInterval time.Duration
}

func New(cfg *config.Config, repo NotificationRepo, client clients.HTTPClientI) *Dispatcher {
	return &Dispatcher{
		webhookURL:   cfg.NotifyWebhook,
		repo:         repo,
		client:       client,
		limit:        1000,
		pool:         newDeliveryPool(10),
		pollInterval: time.Second * 5,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	if d.webhookURL == "" {
		zap.L().Info("Notification webhook not configured, dispatcher disabled")
		return
	}
	zap.L().Info("Notification dispatcher started")
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			d.pool.close()
			return
		case <-ticker.C:
			d.dispatchPending(ctx)
		}
	}
}

func (d *Dispatcher) dispatchPending(ctx context.Context) {
	pending, err := d.repo.FindUndelivered(ctx, atomic.LoadUint32(&d.limit))
	if err != nil {
		zap.L().Error("Failed to fetch undelivered notifications", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, notification := range pending {
		notification := notification

		if _, loaded := inFlight.LoadOrStore(notification.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.pool.submit(ctx, func() error {
				defer inFlight.Delete(notification.ID)
				return d.deliver(ctx, notification)
			})
			if err != nil {
				inFlight.Delete(notification.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching notifications", zap.Error(err))
	}
}

func (d *Dispatcher) deliver(ctx context.Context, notification domain.Notification) error {
	body, err := json.Marshal(webhookPayload{
		UserID:  notification.UserID,
		Type:    notification.Type,
		Title:   notification.Title,
		Message: notification.Message,
	})
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	var statusCode int
	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, _, err = d.client.Post(d.webhookURL, headers, body)
		if err == nil && statusCode == http.StatusOK {
			return d.repo.MarkDelivered(ctx, notification.ID)
		}

		zap.L().Warn("Webhook delivery attempt failed",
			zap.String("notification_id", notification.ID),
			zap.Int("attempt", attempt),
			zap.Int("status", statusCode),
			zap.Error(err))
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("webhook delivery failed after %d attempts: status %d", maxRetries, statusCode)
}
