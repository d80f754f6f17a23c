package service

import (
	"github.com/lexqna/lexqna/internal/handlers/admin"
	"github.com/lexqna/lexqna/internal/handlers/aichat"
	"github.com/lexqna/lexqna/internal/handlers/auth"
	"github.com/lexqna/lexqna/internal/handlers/points"
	"github.com/lexqna/lexqna/internal/handlers/qna"
	"github.com/lexqna/lexqna/internal/handlers/verification"

	pkgauth "github.com/lexqna/lexqna/pkg/auth"

	"github.com/lexqna/lexqna/internal/ai"
	"github.com/lexqna/lexqna/internal/config"
	"github.com/lexqna/lexqna/internal/payment"
	"github.com/lexqna/lexqna/internal/pg"
	"github.com/lexqna/lexqna/internal/repo"
	"github.com/lexqna/lexqna/internal/service/aiservice"
	"github.com/lexqna/lexqna/internal/service/answerservice"
	"github.com/lexqna/lexqna/internal/service/authservice"
	"github.com/lexqna/lexqna/internal/service/pointservice"
	"github.com/lexqna/lexqna/internal/service/questionservice"
	"github.com/lexqna/lexqna/internal/service/verificationservice"
	"github.com/lexqna/lexqna/internal/session"
)

type Services struct {
	AuthService         auth.Service
	QuestionService     qna.QuestionService
	AnswerService       qna.AnswerService
	PointService        points.Service
	VerificationService verification.Service
	AdminService        admin.Service
	AIService           aichat.Service
}

func New(
	cfg *config.Config,
	repos *repo.Repositories,
	txManager pg.TXManager,
	sessions *session.Store,
	payments *payment.Client,
	gemini *ai.Client,
) *Services {
	authService := authservice.New(repos.UserRepo, repos.WalletRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	questionService := questionservice.New(
		repos.QuestionRepo,
		repos.AnswerRepo,
		repos.WalletRepo,
		repos.TransactionRepo,
		repos.NotificationRepo,
		txManager,
		cfg.DeletionWindow(),
		cfg.AnswerCost,
	)
	answerService := answerservice.New(
		repos.UserRepo,
		repos.QuestionRepo,
		repos.AnswerRepo,
		repos.WalletRepo,
		repos.TransactionRepo,
		repos.NotificationRepo,
		txManager,
		cfg.AnswerCost,
	)
	pointService := pointservice.New(
		repos.WalletRepo,
		repos.TransactionRepo,
		sessions,
		payments,
		txManager,
		cfg.MinChargeAmount,
	)
	verificationService := verificationservice.New(
		repos.UserRepo,
		repos.VerificationRepo,
		repos.NotificationRepo,
		txManager,
	)
	aiService := aiservice.New(gemini)

	return &Services{
		AuthService:         authService,
		QuestionService:     questionService,
		AnswerService:       answerService,
		PointService:        pointService,
		VerificationService: verificationService,
		AdminService:        verificationService,
		AIService:           aiService,
	}
}
