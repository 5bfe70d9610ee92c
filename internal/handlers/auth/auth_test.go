package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/starboard/internal/domain"
	"github.com/GlebRadaev/starboard/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/telegram"
	"github.com/GlebRadaev/starboard/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withUser(r *http.Request, tgID int64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), pkgauth.UserIDKey, tgID))
}

func TestVerifyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful verification",
			body: `{"init_data":"user=%7B%22id%22%3A42%7D&hash=abc"}`,
			prepareMock: func() {
				service.EXPECT().Verify(context.Background(), "user=%7B%22id%22%3A42%7D&hash=abc").
					Return(&domain.User{TgID: 42, Username: "stargazer"}, nil)
				service.EXPECT().GenerateToken(int64(42)).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid signature",
			body: `{"init_data":"user=1&hash=bad"}`,
			prepareMock: func() {
				service.EXPECT().Verify(context.Background(), "user=1&hash=bad").
					Return(nil, fmt.Errorf("%w: %w", authservice.ErrInvalidInitData, telegram.ErrSignatureMismatch))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid init data",
		},
		{
			name:          "Missing init data",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "init_data is required",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Storage error",
			body: `{"init_data":"ok"}`,
			prepareMock: func() {
				service.EXPECT().Verify(context.Background(), "ok").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Error generating token",
			body: `{"init_data":"ok"}`,
			prepareMock: func() {
				service.EXPECT().Verify(context.Background(), "ok").Return(&domain.User{TgID: 42}, nil)
				service.EXPECT().GenerateToken(int64(42)).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/telegram/verify", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.Verify(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.False(t, resp.OK)
				assert.Contains(t, resp.Message, tt.expectedError)
				return
			}
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			assert.JSONEq(t, `{"ok":true,"token":"some-jwt-token","user":{"tg_id":42,"username":"stargazer"}}`, rr.Body.String())
		})
	}
}

func TestUpsertHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Profile saved",
			body: `{"username":"star_gazer","first_name":"Star","photo_url":"https://t.me/i/42.jpg"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), &domain.User{
					TgID: 42, Username: "star_gazer", FirstName: "Star", PhotoURL: "https://t.me/i/42.jpg",
				}).Return(&domain.User{TgID: 42}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Matching tg_id is accepted",
			body: `{"tg_id":42,"username":"star_gazer"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), &domain.User{TgID: 42, Username: "star_gazer"}).Return(&domain.User{TgID: 42}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Foreign tg_id",
			body:          `{"tg_id":7,"username":"star_gazer"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusForbidden,
			expectedError: "tg_id does not match the authenticated user",
		},
		{
			name:          "Invalid username",
			body:          `{"username":"star gazer"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "username contains invalid characters",
		},
		{
			name:          "Blank last name",
			body:          `{"last_name":"  "}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "last_name cannot be empty",
		},
		{
			name:          "Invalid photo url",
			body:          `{"photo_url":"nope"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "photo_url must be a valid URL",
		},
		{
			name: "Storage error",
			body: `{"username":"star_gazer"}`,
			prepareMock: func() {
				service.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to save user data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/user/upsert", strings.NewReader(tt.body)), 42)
			rr := httptest.NewRecorder()

			handler.Upsert(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Profile found",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), int64(42)).Return(&domain.User{TgID: 42, FirstName: "Star"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"tg_id":42,"first_name":"Star"}`,
		},
		{
			name: "Profile missing",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), int64(42)).Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"ok":false,"reason":"User not found"}`,
		},
		{
			name: "Storage error",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), int64(42)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"ok":false,"reason":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest(http.MethodGet, "/api/user/me", nil), 42)
			rr := httptest.NewRecorder()

			handler.Me(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
