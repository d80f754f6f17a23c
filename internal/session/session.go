// Package session keeps short-lived top-up sessions in Redis so that a
// payment confirmation can be matched to the charge request that
// started it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL bounds how long a started top-up may stay unconfirmed.
const TTL = 30 * time.Minute

var ErrNotFound = errors.New("topup session not found or expired")

type TopupSession struct {
	OrderID      string    `json:"order_id"`
	LawyerUserID string    `json:"lawyer_user_id"`
	Amount       int64     `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(orderID string) string {
	return fmt.Sprintf("topup:session:%s", orderID)
}

func (s *Store) Create(ctx context.Context, sess TopupSession) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(sess.OrderID), payload, TTL).Err()
}

func (s *Store) Get(ctx context.Context, orderID string) (*TopupSession, error) {
	payload, err := s.client.Get(ctx, key(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess TopupSession
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, orderID string) error {
	return s.client.Del(ctx, key(orderID)).Err()
}
