package aiservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/lexqna/lexqna/internal/ai"
)

func NewMock(t *testing.T) (*Service, *MockGenerator) {
	ctrl := gomock.NewController(t)
	generator := NewMockGenerator(ctrl)
	service := New(generator)
	defer ctrl.Finish()
	return service, generator
}

func TestChat(t *testing.T) {
	t.Run("Reply carries the disclaimer", func(t *testing.T) {
		service, generator := NewMock(t)
		generator.EXPECT().Generate("전세 계약 갱신을 거절당했습니다.").Return("임대차보호법상 갱신요구권을 검토해 보세요.", nil)

		reply, err := service.Chat(context.Background(), "user-1", "전세 계약 갱신을 거절당했습니다.")
		assert.NoError(t, err)
		assert.Contains(t, reply, "임대차보호법상 갱신요구권을 검토해 보세요.")
		assert.Contains(t, reply, "법률 자문이 아닙니다")
	})

	t.Run("Upstream failure surfaces", func(t *testing.T) {
		service, generator := NewMock(t)
		generator.EXPECT().Generate(gomock.Any()).Return("", ai.ErrUpstreamUnhealthy)

		reply, err := service.Chat(context.Background(), "user-1", "질문")
		assert.Empty(t, reply)
		assert.ErrorIs(t, err, ai.ErrUpstreamUnhealthy)
	})
}
