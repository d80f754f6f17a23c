package questionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthroughTx(m *pg.MockTXManager) {
	m.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestRepository_Save(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO questions (id, asker_user_id, title, content, status, is_public)
        VALUES ($1, $2, $3, $4, $5, $6)
    `)

	question := &domain.Question{
		ID:          "q-1",
		AskerUserID: "asker-1",
		Title:       "경계 침범 분쟁",
		Content:     "옆집 담장이 저희 대지를 침범했습니다.",
		Status:      domain.QuestionAwaitingAnswer,
		IsPublic:    true,
	}

	t.Run("Question saved", func(t *testing.T) {
		passthroughTx(mockTxManager)
		mock.ExpectExec(query).
			WithArgs("q-1", "asker-1", question.Title, question.Content, domain.QuestionAwaitingAnswer, true).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Save(context.Background(), question)
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		passthroughTx(mockTxManager)
		mock.ExpectExec(query).
			WithArgs("q-1", "asker-1", question.Title, question.Content, domain.QuestionAwaitingAnswer, true).
			WillReturnError(errors.New("database error"))

		err := repo.Save(context.Background(), question)
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, asker_user_id, title, content, status, is_public, adopted_answer_id, created_at, deleted_at
        FROM questions
        WHERE id = $1
    `)

	t.Run("Existing question", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "asker_user_id", "title", "content", "status", "is_public", "adopted_answer_id", "created_at", "deleted_at"}).
			AddRow("q-1", "asker-1", "제목", "내용", domain.QuestionAwaitingAnswer, true, (*string)(nil), time.Now(), (*time.Time)(nil))
		mock.ExpectQuery(query).WithArgs("q-1").WillReturnRows(rows)

		question, err := repo.FindByID(context.Background(), "q-1")
		assert.NoError(t, err)
		assert.Equal(t, "q-1", question.ID)
		assert.Equal(t, domain.QuestionAwaitingAnswer, question.Status)
	})

	t.Run("Missing question returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("q-404").WillReturnError(pgx.ErrNoRows)

		question, err := repo.FindByID(context.Background(), "q-404")
		assert.NoError(t, err)
		assert.Nil(t, question)
	})
}

func TestRepository_FindPublic(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, asker_user_id, title, content, status, is_public, adopted_answer_id, created_at, deleted_at
        FROM questions
        WHERE is_public = TRUE AND deleted_at IS NULL
        ORDER BY created_at DESC
        LIMIT $1
    `)

	t.Run("Public questions listed", func(t *testing.T) {
		adopted := "a-1"
		rows := pgxmock.NewRows([]string{"id", "asker_user_id", "title", "content", "status", "is_public", "adopted_answer_id", "created_at", "deleted_at"}).
			AddRow("q-2", "asker-2", "둘째 질문", "내용", domain.QuestionAdopted, true, &adopted, time.Now(), (*time.Time)(nil)).
			AddRow("q-1", "asker-1", "첫 질문", "내용", domain.QuestionAwaitingAnswer, true, (*string)(nil), time.Now().Add(-time.Hour), (*time.Time)(nil))
		mock.ExpectQuery(query).WithArgs(50).WillReturnRows(rows)

		questions, err := repo.FindPublic(context.Background(), 50)
		assert.NoError(t, err)
		assert.Len(t, questions, 2)
		assert.Equal(t, "a-1", *questions[0].AdoptedAnswerID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(50).WillReturnError(errors.New("database error"))

		questions, err := repo.FindPublic(context.Background(), 50)
		assert.Error(t, err)
		assert.Nil(t, questions)
	})
}

func TestRepository_MarkDeleted(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE questions
        SET status = 'deleted', deleted_at = $1
        WHERE id = $2
    `)

	t.Run("Question soft-deleted", func(t *testing.T) {
		passthroughTx(mockTxManager)
		deletedAt := time.Now()
		mock.ExpectExec(query).WithArgs(deletedAt, "q-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkDeleted(context.Background(), "q-1", deletedAt)
		assert.NoError(t, err)
	})
}

func TestRepository_Adopt(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE questions
        SET status = 'adopted', adopted_answer_id = $1
        WHERE id = $2
    `)

	t.Run("Adopted answer recorded", func(t *testing.T) {
		passthroughTx(mockTxManager)
		mock.ExpectExec(query).WithArgs("a-1", "q-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.Adopt(context.Background(), "q-1", "a-1")
		assert.NoError(t, err)
	})

	t.Run("Database error", func(t *testing.T) {
		passthroughTx(mockTxManager)
		mock.ExpectExec(query).WithArgs("a-1", "q-1").WillReturnError(errors.New("database error"))

		err := repo.Adopt(context.Background(), "q-1", "a-1")
		assert.Error(t, err)
	})
}
