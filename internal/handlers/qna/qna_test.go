package qna

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/policy/qnapolicy"
	"github.com/lexqna/lexqna/internal/service/answerservice"
	"github.com/lexqna/lexqna/internal/service/questionservice"
	"github.com/lexqna/lexqna/pkg/auth"
	"github.com/lexqna/lexqna/pkg/utils"
)

func NewMock(t *testing.T) (*QnAHandler, *MockQuestionService, *MockAnswerService) {
	ctrl := gomock.NewController(t)
	questionService := NewMockQuestionService(ctrl)
	answerService := NewMockAnswerService(ctrl)
	handler := New(questionService, answerService)
	defer ctrl.Finish()
	return handler, questionService, answerService
}

func newRequest(method, target, body, userID, questionID string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := req.Context()
	if userID != "" {
		ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	}
	if questionID != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", questionID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestCreateQuestionHandler(t *testing.T) {
	handler, questionService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		userID        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Successful creation",
			body:   `{"title":"경계 침범 분쟁","content":"옆집 담장이 저희 대지를 침범했습니다.","is_public":true}`,
			userID: "asker-1",
			prepareMock: func() {
				questionService.EXPECT().Create(gomock.Any(), "asker-1", "경계 침범 분쟁", "옆집 담장이 저희 대지를 침범했습니다.", true).Return(&domain.Question{
					ID: "q-1",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing title",
			body:          `{"title":"","content":"내용","is_public":true}`,
			userID:        "asker-1",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Title and content are required",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			userID:        "asker-1",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing auth context",
			body:          `{"title":"제목","content":"내용","is_public":true}`,
			userID:        "",
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/questions", tt.body, tt.userID, "")
			rr := httptest.NewRecorder()

			handler.CreateQuestion(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestListQuestionsHandler(t *testing.T) {
	t.Run("Defaults the limit", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().ListPublic(gomock.Any(), defaultListLimit).Return([]domain.Question{
			{ID: "q-1", Title: "첫 질문", Status: domain.QuestionAwaitingAnswer, IsPublic: true},
			{ID: "q-2", Title: "둘째 질문", Status: domain.QuestionAdopted, IsPublic: true},
		}, nil)

		req := newRequest("GET", "/api/questions", "", "", "")
		rr := httptest.NewRecorder()

		handler.ListQuestions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "q-1", resp[0]["question_id"])
	})

	t.Run("Honors the limit param", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().ListPublic(gomock.Any(), 5).Return([]domain.Question{}, nil)

		req := newRequest("GET", "/api/questions?limit=5", "", "", "")
		rr := httptest.NewRecorder()

		handler.ListQuestions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Rejects a bad limit", func(t *testing.T) {
		handler, _, _ := NewMock(t)

		req := newRequest("GET", "/api/questions?limit=-1", "", "", "")
		rr := httptest.NewRecorder()

		handler.ListQuestions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetQuestionHandler(t *testing.T) {
	t.Run("Question with answers", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Get(gomock.Any(), "q-1").Return(&domain.Question{
			ID:     "q-1",
			Title:  "경계 침범 분쟁",
			Status: domain.QuestionAwaitingAnswer,
		}, []domain.Answer{
			{ID: "a-1", Status: domain.AnswerSubmitted, Content: "답변 내용"},
		}, nil)

		req := newRequest("GET", "/api/questions/q-1", "", "", "q-1")
		rr := httptest.NewRecorder()

		handler.GetQuestion(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "q-1", resp["question_id"])
		assert.Len(t, resp["answers"], 1)
	})

	t.Run("Question not found", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Get(gomock.Any(), "q-404").Return(nil, nil, questionservice.ErrQuestionNotFound)

		req := newRequest("GET", "/api/questions/q-404", "", "", "q-404")
		rr := httptest.NewRecorder()

		handler.GetQuestion(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteQuestionHandler(t *testing.T) {
	t.Run("Successful deletion reports refunds", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Delete(gomock.Any(), "q-1", "asker-1", gomock.Any()).Return(&questionservice.DeleteResult{
			RefundedPoints:      2000,
			RefundedAnswerCount: 2,
		}, nil)

		req := newRequest("DELETE", "/api/questions/q-1", "", "asker-1", "q-1")
		rr := httptest.NewRecorder()

		handler.DeleteQuestion(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, float64(2000), resp["refunded_points"])
		assert.Equal(t, float64(2), resp["refunded_answer_count"])
	})

	t.Run("Deletion blocked carries reasons", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Delete(gomock.Any(), "q-1", "asker-1", gomock.Any()).Return(nil, &questionservice.DeletionBlockedError{
			Evaluation: qnapolicy.DeletionEvaluation{
				Reasons: []qnapolicy.DeletionBlockReason{qnapolicy.DeletionWindowExpired},
			},
		})

		req := newRequest("DELETE", "/api/questions/q-1", "", "asker-1", "q-1")
		rr := httptest.NewRecorder()

		handler.DeleteQuestion(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		var resp utils.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, []string{"WINDOW_EXPIRED"}, resp.Reasons)
	})

	t.Run("Question not found", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Delete(gomock.Any(), "q-404", "asker-1", gomock.Any()).Return(nil, questionservice.ErrQuestionNotFound)

		req := newRequest("DELETE", "/api/questions/q-404", "", "asker-1", "q-404")
		rr := httptest.NewRecorder()

		handler.DeleteQuestion(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSubmitAnswerHandler(t *testing.T) {
	content := strings.Repeat("가", 250)
	body, _ := json.Marshal(map[string]string{"content": content})

	t.Run("Successful submission", func(t *testing.T) {
		handler, _, answerService := NewMock(t)
		answerService.EXPECT().Submit(gomock.Any(), "q-1", "lawyer-1", content).Return(&answerservice.SubmitResult{
			Answer:           &domain.Answer{ID: "a-1", CreatedAt: time.Now()},
			DeductedPoints:   1000,
			RemainingBalance: 4000,
		}, nil)

		req := newRequest("POST", "/api/questions/q-1/answers", string(body), "lawyer-1", "q-1")
		rr := httptest.NewRecorder()

		handler.SubmitAnswer(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "a-1", resp["answer_id"])
		assert.Equal(t, float64(1000), resp["deducted_points"])
		assert.Equal(t, float64(4000), resp["remaining_balance"])
	})

	t.Run("Answer too short", func(t *testing.T) {
		handler, _, _ := NewMock(t)

		req := newRequest("POST", "/api/questions/q-1/answers", `{"content":"짧은 답변"}`, "lawyer-1", "q-1")
		rr := httptest.NewRecorder()

		handler.SubmitAnswer(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Submission blocked carries reasons", func(t *testing.T) {
		handler, _, answerService := NewMock(t)
		answerService.EXPECT().Submit(gomock.Any(), "q-1", "lawyer-1", content).Return(nil, &answerservice.SubmissionBlockedError{
			Reasons: []qnapolicy.SubmissionBlockReason{
				qnapolicy.SubmissionLawyerNotApproved,
				qnapolicy.SubmissionInsufficientBalance,
			},
		})

		req := newRequest("POST", "/api/questions/q-1/answers", string(body), "lawyer-1", "q-1")
		rr := httptest.NewRecorder()

		handler.SubmitAnswer(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		var resp utils.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, []string{"LAWYER_NOT_APPROVED", "INSUFFICIENT_BALANCE"}, resp.Reasons)
	})

	t.Run("Question not found", func(t *testing.T) {
		handler, _, answerService := NewMock(t)
		answerService.EXPECT().Submit(gomock.Any(), "q-404", "lawyer-1", content).Return(nil, answerservice.ErrQuestionNotFound)

		req := newRequest("POST", "/api/questions/q-404/answers", string(body), "lawyer-1", "q-404")
		rr := httptest.NewRecorder()

		handler.SubmitAnswer(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAdoptAnswerHandler(t *testing.T) {
	t.Run("Successful adoption", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Adopt(gomock.Any(), "q-1", "a-1", "asker-1").Return(nil)

		req := newRequest("POST", "/api/questions/q-1/adopt", `{"answer_id":"a-1"}`, "asker-1", "q-1")
		rr := httptest.NewRecorder()

		handler.AdoptAnswer(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "a-1", resp["adopted_answer_id"])
	})

	t.Run("Missing answer id", func(t *testing.T) {
		handler, _, _ := NewMock(t)

		req := newRequest("POST", "/api/questions/q-1/adopt", `{}`, "asker-1", "q-1")
		rr := httptest.NewRecorder()

		handler.AdoptAnswer(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Already adopted", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Adopt(gomock.Any(), "q-1", "a-2", "asker-1").Return(&questionservice.AdoptionBlockedError{
			Reasons: []qnapolicy.AdoptionBlockReason{qnapolicy.AdoptionAlreadyAdopted},
		})

		req := newRequest("POST", "/api/questions/q-1/adopt", `{"answer_id":"a-2"}`, "asker-1", "q-1")
		rr := httptest.NewRecorder()

		handler.AdoptAnswer(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		var resp utils.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, []string{"ALREADY_ADOPTED"}, resp.Reasons)
	})

	t.Run("Answer from another question", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Adopt(gomock.Any(), "q-1", "a-9", "asker-1").Return(questionservice.ErrAnswerNotFound)

		req := newRequest("POST", "/api/questions/q-1/adopt", `{"answer_id":"a-9"}`, "asker-1", "q-1")
		rr := httptest.NewRecorder()

		handler.AdoptAnswer(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Internal error", func(t *testing.T) {
		handler, questionService, _ := NewMock(t)
		questionService.EXPECT().Adopt(gomock.Any(), "q-1", "a-1", "asker-1").Return(errors.New("db error"))

		req := newRequest("POST", "/api/questions/q-1/adopt", `{"answer_id":"a-1"}`, "asker-1", "q-1")
		rr := httptest.NewRecorder()

		handler.AdoptAnswer(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
