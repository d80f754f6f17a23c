package questionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/pg"
	"github.com/lexqna/lexqna/internal/policy/qnapolicy"
)

const (
	testWindow = time.Hour
	testRefund = int64(1000)
)

type mocks struct {
	questionRepo     *MockQuestionRepo
	answerRepo       *MockAnswerRepo
	walletRepo       *MockWalletRepo
	transactionRepo  *MockTransactionRepo
	notificationRepo *MockNotificationRepo
	txManager        *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		questionRepo:     NewMockQuestionRepo(ctrl),
		answerRepo:       NewMockAnswerRepo(ctrl),
		walletRepo:       NewMockWalletRepo(ctrl),
		transactionRepo:  NewMockTransactionRepo(ctrl),
		notificationRepo: NewMockNotificationRepo(ctrl),
		txManager:        pg.NewMockTXManager(ctrl),
	}
	service := New(m.questionRepo, m.answerRepo, m.walletRepo, m.transactionRepo, m.notificationRepo, m.txManager, testWindow, testRefund)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Successful creation", func(t *testing.T) {
		m.questionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, question *domain.Question) error {
				assert.Equal(t, "asker-1", question.AskerUserID)
				assert.Equal(t, domain.QuestionAwaitingAnswer, question.Status)
				assert.NotEmpty(t, question.ID)
				return nil
			})

		question, err := service.Create(context.Background(), "asker-1", "전세보증금 반환", "계약 만료 후 보증금을 돌려받지 못하고 있습니다.", true)
		assert.NoError(t, err)
		assert.True(t, question.IsPublic)
	})

	t.Run("Save failure", func(t *testing.T) {
		m.questionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		question, err := service.Create(context.Background(), "asker-1", "title", "content body here", true)
		assert.Error(t, err)
		assert.Nil(t, question)
	})
}

func TestDelete(t *testing.T) {
	now := time.Now()
	created := now.Add(-30 * time.Minute)

	question := func() *domain.Question {
		return &domain.Question{
			ID:          "q-1",
			AskerUserID: "asker-1",
			Status:      domain.QuestionAwaitingAnswer,
			CreatedAt:   created,
		}
	}

	t.Run("Deletion with two refunds", func(t *testing.T) {
		service, m := NewMock(t)
		answers := []domain.Answer{
			{ID: "a-1", QuestionID: "q-1", LawyerUserID: "lawyer-1", Status: domain.AnswerSubmitted},
			{ID: "a-2", QuestionID: "q-1", LawyerUserID: "lawyer-2", Status: domain.AnswerSubmitted},
		}
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question(), nil)
		m.answerRepo.EXPECT().FindByQuestionID(gomock.Any(), "q-1").Return(answers, nil)
		passthroughTx(m)
		m.questionRepo.EXPECT().MarkDeleted(gomock.Any(), "q-1", now).Return(nil)
		m.answerRepo.EXPECT().MarkDeletedByQuestionID(gomock.Any(), "q-1", now).Return(nil)
		for _, lawyer := range []string{"lawyer-1", "lawyer-2"} {
			m.walletRepo.EXPECT().GetWallet(gomock.Any(), lawyer).Return(&domain.PointWallet{LawyerUserID: lawyer, Balance: 500}, nil)
			m.walletRepo.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, wallet *domain.PointWallet) (*domain.PointWallet, error) {
					assert.Equal(t, int64(1500), wallet.Balance)
					return wallet, nil
				})
			m.transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, tx *domain.PointTransaction) (*domain.PointTransaction, error) {
					assert.Equal(t, domain.TransactionAnswerRefund, tx.Type)
					assert.Equal(t, testRefund, tx.Amount)
					return tx, nil
				})
			m.notificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		}

		result, err := service.Delete(context.Background(), "q-1", "asker-1", now)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.RefundedAnswerCount)
		assert.Equal(t, int64(2000), result.RefundedPoints)
	})

	t.Run("Already deleted answers are not refunded", func(t *testing.T) {
		service, m := NewMock(t)
		answers := []domain.Answer{
			{ID: "a-1", QuestionID: "q-1", LawyerUserID: "lawyer-1", Status: domain.AnswerDeleted},
		}
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question(), nil)
		m.answerRepo.EXPECT().FindByQuestionID(gomock.Any(), "q-1").Return(answers, nil)
		passthroughTx(m)
		m.questionRepo.EXPECT().MarkDeleted(gomock.Any(), "q-1", now).Return(nil)
		m.answerRepo.EXPECT().MarkDeletedByQuestionID(gomock.Any(), "q-1", now).Return(nil)

		result, err := service.Delete(context.Background(), "q-1", "asker-1", now)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.RefundedAnswerCount)
		assert.Equal(t, int64(0), result.RefundedPoints)
	})

	t.Run("Blocked outside the window", func(t *testing.T) {
		service, m := NewMock(t)
		old := question()
		old.CreatedAt = now.Add(-2 * time.Hour)
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(old, nil)
		m.answerRepo.EXPECT().FindByQuestionID(gomock.Any(), "q-1").Return(nil, nil)

		result, err := service.Delete(context.Background(), "q-1", "asker-1", now)
		assert.Nil(t, result)
		var blocked *DeletionBlockedError
		assert.ErrorAs(t, err, &blocked)
		assert.Contains(t, blocked.Evaluation.Reasons, qnapolicy.DeletionWindowExpired)
	})

	t.Run("Blocked for non-owner", func(t *testing.T) {
		service, m := NewMock(t)
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question(), nil)
		m.answerRepo.EXPECT().FindByQuestionID(gomock.Any(), "q-1").Return(nil, nil)

		result, err := service.Delete(context.Background(), "q-1", "someone-else", now)
		assert.Nil(t, result)
		var blocked *DeletionBlockedError
		assert.ErrorAs(t, err, &blocked)
		assert.Contains(t, blocked.Evaluation.Reasons, qnapolicy.DeletionNotOwner)
	})

	t.Run("Question not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(nil, nil)

		result, err := service.Delete(context.Background(), "q-1", "asker-1", now)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("Refund failure rolls up", func(t *testing.T) {
		service, m := NewMock(t)
		answers := []domain.Answer{
			{ID: "a-1", QuestionID: "q-1", LawyerUserID: "lawyer-1", Status: domain.AnswerSubmitted},
		}
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question(), nil)
		m.answerRepo.EXPECT().FindByQuestionID(gomock.Any(), "q-1").Return(answers, nil)
		passthroughTx(m)
		m.questionRepo.EXPECT().MarkDeleted(gomock.Any(), "q-1", now).Return(nil)
		m.answerRepo.EXPECT().MarkDeletedByQuestionID(gomock.Any(), "q-1", now).Return(nil)
		m.walletRepo.EXPECT().GetWallet(gomock.Any(), "lawyer-1").Return(nil, errors.New("db error"))

		result, err := service.Delete(context.Background(), "q-1", "asker-1", now)
		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestAdopt(t *testing.T) {
	question := func() *domain.Question {
		return &domain.Question{
			ID:          "q-1",
			AskerUserID: "asker-1",
			Status:      domain.QuestionAwaitingAnswer,
		}
	}
	answer := &domain.Answer{
		ID:           "a-1",
		QuestionID:   "q-1",
		LawyerUserID: "lawyer-1",
		Status:       domain.AnswerSubmitted,
	}

	t.Run("Successful adoption", func(t *testing.T) {
		service, m := NewMock(t)
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question(), nil)
		m.answerRepo.EXPECT().FindByID(gomock.Any(), "a-1").Return(answer, nil)
		passthroughTx(m)
		m.questionRepo.EXPECT().Adopt(gomock.Any(), "q-1", "a-1").Return(nil)
		m.answerRepo.EXPECT().MarkAdopted(gomock.Any(), "a-1").Return(nil)
		m.notificationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, notification *domain.Notification) error {
				assert.Equal(t, "lawyer-1", notification.UserID)
				return nil
			})

		err := service.Adopt(context.Background(), "q-1", "a-1", "asker-1")
		assert.NoError(t, err)
	})

	t.Run("Second adoption is blocked", func(t *testing.T) {
		service, m := NewMock(t)
		adopted := question()
		adopted.Status = domain.QuestionAdopted
		other := "a-0"
		adopted.AdoptedAnswerID = &other
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(adopted, nil)
		m.answerRepo.EXPECT().FindByID(gomock.Any(), "a-1").Return(answer, nil)

		err := service.Adopt(context.Background(), "q-1", "a-1", "asker-1")
		var blocked *AdoptionBlockedError
		assert.ErrorAs(t, err, &blocked)
		assert.Contains(t, blocked.Reasons, qnapolicy.AdoptionAlreadyAdopted)
	})

	t.Run("Answer from another question", func(t *testing.T) {
		service, m := NewMock(t)
		foreign := &domain.Answer{ID: "a-1", QuestionID: "q-2", LawyerUserID: "lawyer-1", Status: domain.AnswerSubmitted}
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question(), nil)
		m.answerRepo.EXPECT().FindByID(gomock.Any(), "a-1").Return(foreign, nil)

		err := service.Adopt(context.Background(), "q-1", "a-1", "asker-1")
		var blocked *AdoptionBlockedError
		assert.ErrorAs(t, err, &blocked)
		assert.Contains(t, blocked.Reasons, qnapolicy.AdoptionAnswerMismatch)
	})

	t.Run("Answer not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question(), nil)
		m.answerRepo.EXPECT().FindByID(gomock.Any(), "a-1").Return(nil, nil)

		err := service.Adopt(context.Background(), "q-1", "a-1", "asker-1")
		assert.ErrorIs(t, err, ErrAnswerNotFound)
	})
}

func TestListPublic(t *testing.T) {
	service, m := NewMock(t)

	questions := []domain.Question{
		{ID: "q-2", Status: domain.QuestionAwaitingAnswer, IsPublic: true},
		{ID: "q-1", Status: domain.QuestionAdopted, IsPublic: true},
	}
	m.questionRepo.EXPECT().FindPublic(gomock.Any(), 50).Return(questions, nil)

	got, err := service.ListPublic(context.Background(), 50)
	assert.NoError(t, err)
	assert.Equal(t, questions, got)
}

func TestGet(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Question with answers", func(t *testing.T) {
		question := &domain.Question{ID: "q-1", Status: domain.QuestionAwaitingAnswer}
		answers := []domain.Answer{{ID: "a-1", QuestionID: "q-1"}}
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "q-1").Return(question, nil)
		m.answerRepo.EXPECT().FindByQuestionID(gomock.Any(), "q-1").Return(answers, nil)

		gotQuestion, gotAnswers, err := service.Get(context.Background(), "q-1")
		assert.NoError(t, err)
		assert.Equal(t, question, gotQuestion)
		assert.Equal(t, answers, gotAnswers)
	})

	t.Run("Not found", func(t *testing.T) {
		m.questionRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)

		_, _, err := service.Get(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}
