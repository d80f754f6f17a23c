package notify

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/lexqna/lexqna/internal/config"
	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/pkg/clients"
)

func NewMock(t *testing.T) (*Dispatcher, *MockNotificationRepo, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	repo := NewMockNotificationRepo(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	dispatcher := New(&config.Config{NotifyWebhook: "https://hooks.example.com/notify"}, repo, client)
	defer ctrl.Finish()
	return dispatcher, repo, client
}

func notification(id string) domain.Notification {
	return domain.Notification{
		ID:      id,
		UserID:  "user-1",
		Type:    "answer_received",
		Title:   "새로운 답변이 등록되었습니다",
		Message: "질문에 변호사 답변이 달렸습니다.",
	}
}

func TestDeliver(t *testing.T) {
	t.Run("Delivered on first attempt", func(t *testing.T) {
		dispatcher, repo, client := NewMock(t)
		client.EXPECT().Post("https://hooks.example.com/notify", gomock.Any(), gomock.Any()).DoAndReturn(
			func(url string, headers http.Header, body []byte) (int, []byte, error) {
				assert.Contains(t, string(body), "answer_received")
				return http.StatusOK, nil, nil
			})
		repo.EXPECT().MarkDelivered(gomock.Any(), "n-1").Return(nil)

		err := dispatcher.deliver(context.Background(), notification("n-1"))
		assert.NoError(t, err)
	})

	t.Run("Retries then succeeds", func(t *testing.T) {
		dispatcher, repo, client := NewMock(t)
		client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusBadGateway, nil, nil)
		client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, nil, nil)
		repo.EXPECT().MarkDelivered(gomock.Any(), "n-2").Return(nil)

		err := dispatcher.deliver(context.Background(), notification("n-2"))
		assert.NoError(t, err)
	})

	t.Run("Gives up after the retry budget", func(t *testing.T) {
		dispatcher, _, client := NewMock(t)
		client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection refused")).Times(maxRetries)

		err := dispatcher.deliver(context.Background(), notification("n-3"))
		assert.Error(t, err)
	})

	t.Run("Canceled context stops retrying", func(t *testing.T) {
		dispatcher, _, _ := NewMock(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := dispatcher.deliver(ctx, notification("n-4"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDispatchPending(t *testing.T) {
	t.Run("Pending notifications are delivered and marked", func(t *testing.T) {
		dispatcher, repo, client := NewMock(t)
		repo.EXPECT().FindUndelivered(gomock.Any(), uint32(1000)).Return([]domain.Notification{
			notification("n-10"),
			notification("n-11"),
		}, nil)
		client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, nil, nil).Times(2)

		delivered := make(chan string, 2)
		repo.EXPECT().MarkDelivered(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, id string) error {
				delivered <- id
				return nil
			}).Times(2)

		dispatcher.dispatchPending(context.Background())

		got := map[string]bool{}
		for i := 0; i < 2; i++ {
			select {
			case id := <-delivered:
				got[id] = true
			case <-time.After(3 * time.Second):
				t.Fatal("delivery did not finish in time")
			}
		}
		assert.True(t, got["n-10"])
		assert.True(t, got["n-11"])
	})

	t.Run("Fetch failure is swallowed", func(t *testing.T) {
		dispatcher, repo, _ := NewMock(t)
		repo.EXPECT().FindUndelivered(gomock.Any(), uint32(1000)).Return(nil, errors.New("database error"))

		dispatcher.dispatchPending(context.Background())
	})
}
