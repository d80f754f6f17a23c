package repo

import (
	"github.com/lexqna/lexqna/internal/pg"
	answerrepo "github.com/lexqna/lexqna/internal/repo/answer-repo"
	notificationrepo "github.com/lexqna/lexqna/internal/repo/notification-repo"
	questionrepo "github.com/lexqna/lexqna/internal/repo/question-repo"
	transactionrepo "github.com/lexqna/lexqna/internal/repo/transaction-repo"
	userrepo "github.com/lexqna/lexqna/internal/repo/user-repo"
	verificationrepo "github.com/lexqna/lexqna/internal/repo/verification-repo"
	walletrepo "github.com/lexqna/lexqna/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	QuestionRepo     *questionrepo.Repository
	AnswerRepo       *answerrepo.Repository
	WalletRepo       *walletrepo.Repository
	TransactionRepo  *transactionrepo.Repository
	VerificationRepo *verificationrepo.Repository
	NotificationRepo *notificationrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		QuestionRepo:     questionrepo.New(conn, txManager),
		AnswerRepo:       answerrepo.New(conn, txManager),
		WalletRepo:       walletrepo.New(conn, txManager),
		TransactionRepo:  transactionrepo.New(conn),
		VerificationRepo: verificationrepo.New(conn, txManager),
		NotificationRepo: notificationrepo.New(conn),
	}
}
