package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/lexqna/lexqna/internal/domain"
	"github.com/lexqna/lexqna/internal/service/authservice"
	"github.com/lexqna/lexqna/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful asker registration",
			body: `{"email":"asker@example.com","password":"password123","role":"asker"}`,
			prepareMock: func() {
				service.EXPECT().RegisterAsker(context.Background(), "asker@example.com", "password123").Return(&domain.User{
					ID:   "user-1",
					Role: domain.RoleAsker,
				}, nil)
				service.EXPECT().GenerateToken("user-1", domain.RoleAsker).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Successful lawyer registration",
			body: `{"email":"lawyer@example.com","password":"password123","role":"lawyer","full_name":"Kim Minsu","bar_number":"12-34567"}`,
			prepareMock: func() {
				service.EXPECT().RegisterLawyer(context.Background(), "lawyer@example.com", "password123", "Kim Minsu", "12-34567").Return(&domain.User{
					ID:   "user-2",
					Role: domain.RoleLawyer,
				}, nil)
				service.EXPECT().GenerateToken("user-2", domain.RoleLawyer).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Email already taken",
			body: `{"email":"asker@example.com","password":"password123","role":"asker"}`,
			prepareMock: func() {
				service.EXPECT().RegisterAsker(context.Background(), "asker@example.com", "password123").Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrEmailTaken.Error(),
		},
		{
			name: "Malformed bar number",
			body: `{"email":"lawyer@example.com","password":"password123","role":"lawyer","full_name":"Kim Minsu","bar_number":"1234567"}`,
			prepareMock: func() {
				service.EXPECT().RegisterLawyer(context.Background(), "lawyer@example.com", "password123", "Kim Minsu", "1234567").Return(nil, authservice.ErrInvalidBarNumber)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: authservice.ErrInvalidBarNumber.Error(),
		},
		{
			name:          "Unknown role",
			body:          `{"email":"someone@example.com","password":"password123","role":"moderator"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Unknown role",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"email":"asker@example.com","password":"password123","role":"asker"}`,
			prepareMock: func() {
				service.EXPECT().RegisterAsker(context.Background(), "asker@example.com", "password123").Return(&domain.User{
					ID:   "user-1",
					Role: domain.RoleAsker,
				}, nil)
				service.EXPECT().GenerateToken("user-1", domain.RoleAsker).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"asker@example.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "asker@example.com", "password123").Return(&domain.User{
					ID:   "user-1",
					Role: domain.RoleAsker,
				}, nil)
				service.EXPECT().GenerateToken("user-1", domain.RoleAsker).Return("some-jwt-token", nil)
			},
			expectedCode:  http.StatusOK,
			expectedError: "",
		},
		{
			name: "Invalid credentials",
			body: `{"email":"asker@example.com","password":"wrongpass"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "asker@example.com", "wrongpass").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
