package aiservice

import (
	"context"

	"go.uber.org/zap"
)

const disclaimer = "\n\n※ 본 답변은 AI가 생성한 일반적인 정보이며 법률 자문이 아닙니다. 구체적인 사안은 변호사와 상담하세요."

type Generator interface {
	Generate(message string) (string, error)
}

type Service struct {
	generator Generator
}

func New(generator Generator) *Service {
	return &Service{generator: generator}
}

// Chat asks the assistant one question. Every reply carries the legal
// disclaimer so a generated answer is never mistaken for counsel.
func (s *Service) Chat(ctx context.Context, userID, message string) (string, error) {
	reply, err := s.generator.Generate(message)
	if err != nil {
		zap.L().Error("can't generate ai reply: ", zap.Error(err))
		return "", err
	}
	zap.L().Debug("ai chat served", zap.String("user_id", userID))
	return reply + disclaimer, nil
}
