package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/lexqna/lexqna/docs"
	"github.com/lexqna/lexqna/internal/domain"
	adminhandlers "github.com/lexqna/lexqna/internal/handlers/admin"
	aichathandlers "github.com/lexqna/lexqna/internal/handlers/aichat"
	authhandlers "github.com/lexqna/lexqna/internal/handlers/auth"
	pointshandlers "github.com/lexqna/lexqna/internal/handlers/points"
	qnahandlers "github.com/lexqna/lexqna/internal/handlers/qna"
	verificationhandlers "github.com/lexqna/lexqna/internal/handlers/verification"
	appmiddleware "github.com/lexqna/lexqna/internal/middleware"
	"github.com/lexqna/lexqna/internal/service"
	"github.com/lexqna/lexqna/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type QnAHandler interface {
	CreateQuestion(w http.ResponseWriter, r *http.Request)
	ListQuestions(w http.ResponseWriter, r *http.Request)
	GetQuestion(w http.ResponseWriter, r *http.Request)
	DeleteQuestion(w http.ResponseWriter, r *http.Request)
	SubmitAnswer(w http.ResponseWriter, r *http.Request)
	AdoptAnswer(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	CreateTopupSession(w http.ResponseWriter, r *http.Request)
	ConfirmTopup(w http.ResponseWriter, r *http.Request)
}

type VerificationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListVerifications(w http.ResponseWriter, r *http.Request)
	DecideVerification(w http.ResponseWriter, r *http.Request)
}

type AIChatHandler interface {
	Chat(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler         AuthHandler
	QnAHandler          QnAHandler
	PointsHandler       PointsHandler
	VerificationHandler VerificationHandler
	AdminHandler        AdminHandler
	AIChatHandler       AIChatHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:         authhandlers.New(s.AuthService),
		QnAHandler:          qnahandlers.New(s.QuestionService, s.AnswerService),
		PointsHandler:       pointshandlers.New(s.PointService),
		VerificationHandler: verificationhandlers.New(s.VerificationService),
		AdminHandler:        adminhandlers.New(s.AdminService),
		AIChatHandler:       aichathandlers.New(s.AIService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		appmiddleware.Metrics,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Route("/questions", func(r chi.Router) {
			r.Get("/", h.QnAHandler.ListQuestions)
			r.Get("/{id}", h.QnAHandler.GetQuestion)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/", h.QnAHandler.CreateQuestion)
				r.Delete("/{id}", h.QnAHandler.DeleteQuestion)
				r.Post("/{id}/adopt", h.QnAHandler.AdoptAnswer)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireRole(domain.RoleLawyer))
					r.Post("/{id}/answers", h.QnAHandler.SubmitAnswer)
				})
			})
		})

		r.Route("/points", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole(domain.RoleLawyer))
			r.Get("/balance", h.PointsHandler.GetBalance)
			r.Get("/transactions", h.PointsHandler.GetTransactions)
			r.Post("/topup", h.PointsHandler.CreateTopupSession)
			r.Post("/topup/confirm", h.PointsHandler.ConfirmTopup)
		})

		r.Route("/verification", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole(domain.RoleLawyer))
			r.Post("/", h.VerificationHandler.Submit)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole(domain.RoleAdmin))
			r.Get("/verifications", h.AdminHandler.ListVerifications)
			r.Post("/verifications/{id}", h.AdminHandler.DecideVerification)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/chat", h.AIChatHandler.Chat)
		})
	})

	return r
}
