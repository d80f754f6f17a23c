package qna

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/dto"
	"github.com/lexqna/lexqna/internal/service/answerservice"
	"github.com/lexqna/lexqna/internal/service/questionservice"
	"github.com/lexqna/lexqna/pkg/auth"
	"github.com/lexqna/lexqna/pkg/utils"
)

const (
	minAnswerLength = 200
	maxAnswerLength = 5000

	defaultListLimit = 50
)

type QuestionService interface {
	Create(ctx context.Context, askerUserID, title, content string, isPublic bool) (*domain.Question, error)
	ListPublic(ctx context.Context, limit int) ([]domain.Question, error)
	Get(ctx context.Context, id string) (*domain.Question, []domain.Answer, error)
	Delete(ctx context.Context, questionID, requesterID string, now time.Time) (*questionservice.DeleteResult, error)
	Adopt(ctx context.Context, questionID, answerID, actingUserID string) error
}

type AnswerService interface {
	Submit(ctx context.Context, questionID, lawyerUserID, content string) (*answerservice.SubmitResult, error)
}

type QnAHandler struct {
	questionService QuestionService
	answerService   AnswerService
}

func New(questionService QuestionService, answerService AnswerService) *QnAHandler {
	return &QnAHandler{
		questionService: questionService,
		answerService:   answerService,
	}
}

// CreateQuestion godoc
//
//	@Summary		Post a question
//	@Description	Create a property-law question; posting is free
//	@Tags			QnA
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateQuestionRequestDTO	true	"Question body"
//	@Success		200		{object}	dto.CreateQuestionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/questions [post]
func (h *QnAHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateQuestionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	question, err := h.questionService.Create(r.Context(), userID, req.Title, req.Content, req.IsPublic)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateQuestionResponseDTO{QuestionID: question.ID})
}

// ListQuestions godoc
//
//	@Summary		List public questions
//	@Description	List public, non-deleted questions, newest first
//	@Tags			QnA
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum questions to return"
//	@Success		200		{array}		dto.QuestionResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/questions [get]
func (h *QnAHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	questions, err := h.questionService.ListPublic(r.Context(), limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, question := range questions {
		resp = append(resp, toQuestionDTO(question, nil))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetQuestion godoc
//
//	@Summary		Get one question
//	@Description	Fetch a question with its active answers
//	@Tags			QnA
//	@Produce		json
//	@Param			id	path		string	true	"Question ID"
//	@Success		200	{object}	dto.QuestionResponseDTO
//	@Failure		404	{object}	utils.Response	"Question not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/questions/{id} [get]
func (h *QnAHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	question, answers, err := h.questionService.Get(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, questionservice.ErrQuestionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Question not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toQuestionDTO(*question, answers))
}

// DeleteQuestion godoc
//
//	@Summary		Delete a question
//	@Description	Soft-delete an own question within the deletion window, refunding fees for active answers
//	@Tags			QnA
//	@Produce		json
//	@Param			id	path		string	true	"Question ID"
//	@Success		200	{object}	dto.DeleteQuestionResponseDTO
//	@Failure		403	{object}	utils.ErrorResponse	"Deletion blocked by policy"
//	@Failure		404	{object}	utils.Response		"Question not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/questions/{id} [delete]
func (h *QnAHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	questionID := chi.URLParam(r, "id")

	result, err := h.questionService.Delete(r.Context(), questionID, userID, time.Now())
	if err != nil {
		var blocked *questionservice.DeletionBlockedError
		switch {
		case errors.As(err, &blocked):
			reasons := make([]string, len(blocked.Evaluation.Reasons))
			for i, reason := range blocked.Evaluation.Reasons {
				reasons[i] = string(reason)
			}
			utils.RespondWithReasons(w, http.StatusForbidden, "Deletion blocked", reasons)
		case errors.Is(err, questionservice.ErrQuestionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Question not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteQuestionResponseDTO{
		RefundedPoints:      result.RefundedPoints,
		RefundedAnswerCount: result.RefundedAnswerCount,
	})
}

// SubmitAnswer godoc
//
//	@Summary		Submit an answer
//	@Description	Submit an answer to a question, paying the fixed point fee
//	@Tags			QnA
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Question ID"
//	@Param			request	body		dto.SubmitAnswerRequestDTO	true	"Answer body"
//	@Success		200		{object}	dto.SubmitAnswerResponseDTO
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		403		{object}	utils.ErrorResponse	"Submission blocked by policy"
//	@Failure		404		{object}	utils.Response		"Question not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/questions/{id}/answers [post]
func (h *QnAHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	questionID := chi.URLParam(r, "id")

	var req dto.SubmitAnswerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if length := utf8.RuneCountInString(req.Content); length < minAnswerLength || length > maxAnswerLength {
		utils.RespondWithError(w, http.StatusBadRequest, "Answer length must be between 200 and 5000 characters")
		return
	}

	result, err := h.answerService.Submit(r.Context(), questionID, userID, req.Content)
	if err != nil {
		var blocked *answerservice.SubmissionBlockedError
		switch {
		case errors.As(err, &blocked):
			reasons := make([]string, len(blocked.Reasons))
			for i, reason := range blocked.Reasons {
				reasons[i] = string(reason)
			}
			utils.RespondWithReasons(w, http.StatusForbidden, "Submission blocked", reasons)
		case errors.Is(err, answerservice.ErrQuestionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Question not found")
		case errors.Is(err, answerservice.ErrLawyerNotFound):
			utils.RespondWithError(w, http.StatusForbidden, "Lawyer profile required")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitAnswerResponseDTO{
		AnswerID:         result.Answer.ID,
		DeductedPoints:   result.DeductedPoints,
		RemainingBalance: result.RemainingBalance,
	})
}

// AdoptAnswer godoc
//
//	@Summary		Adopt an answer
//	@Description	Mark one answer as adopted; permanent and exclusive per question
//	@Tags			QnA
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Question ID"
//	@Param			request	body		dto.AdoptAnswerRequestDTO	true	"Adoption body"
//	@Success		200		{object}	dto.AdoptAnswerResponseDTO
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		403		{object}	utils.ErrorResponse	"Adoption blocked by policy"
//	@Failure		404		{object}	utils.Response		"Question not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/questions/{id}/adopt [post]
func (h *QnAHandler) AdoptAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(string)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	questionID := chi.URLParam(r, "id")

	var req dto.AdoptAnswerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AnswerID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.questionService.Adopt(r.Context(), questionID, req.AnswerID, userID)
	if err != nil {
		var blocked *questionservice.AdoptionBlockedError
		switch {
		case errors.As(err, &blocked):
			reasons := make([]string, len(blocked.Reasons))
			for i, reason := range blocked.Reasons {
				reasons[i] = string(reason)
			}
			utils.RespondWithReasons(w, http.StatusForbidden, "Adoption blocked", reasons)
		case errors.Is(err, questionservice.ErrQuestionNotFound), errors.Is(err, questionservice.ErrAnswerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdoptAnswerResponseDTO{AdoptedAnswerID: req.AnswerID})
}

func toQuestionDTO(question domain.Question, answers []domain.Answer) dto.QuestionResponseDTO {
	resp := dto.QuestionResponseDTO{
		QuestionID:      question.ID,
		Title:           question.Title,
		Content:         question.Content,
		Status:          string(question.Status),
		IsPublic:        question.IsPublic,
		AdoptedAnswerID: question.AdoptedAnswerID,
		CreatedAt:       question.CreatedAt,
	}
	for _, answer := range answers {
		resp.Answers = append(resp.Answers, dto.AnswerResponseDTO{
			AnswerID:  answer.ID,
			Status:    string(answer.Status),
			Content:   answer.Content,
			CreatedAt: answer.CreatedAt,
		})
	}
	return resp
}
