package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/starboard/internal/config"
	"github.com/GlebRadaev/starboard/internal/handlers/auth"
	"github.com/GlebRadaev/starboard/internal/handlers/balance"
	"github.com/GlebRadaev/starboard/internal/service"
	pkgauth "github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/security"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		BalanceService: balance.NewMockService(ctrl),
		JWTService:     pkgauth.NewMockJWTServiceInterface(ctrl),
	}
	cfg := &config.Config{
		RateLimitRequests: 10,
		RateLimitWindow:   time.Minute,
		RateLimitCapacity: 100,
		MaxRequestSize:    1 << 20,
		AllowedOrigins:    []string{"https://web.telegram.org"},
	}

	h := New(cfg, services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.RateLimiter)
	assert.NotNil(t, h.CORS)
	assert.Equal(t, int64(1<<20), h.MaxRequestSize)
}

func newTestRouter(t *testing.T, requests int) chi.Router {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockLeaderboardHandler := NewMockLeaderboardHandler(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Verify(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Upsert(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetDeposits(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockLeaderboardHandler.EXPECT().GetLeaderboard(gomock.Any(), gomock.Any()).AnyTimes()
	jwtService.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{TgID: 42}, nil).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		BalanceHandler:     mockBalanceHandler,
		LeaderboardHandler: mockLeaderboardHandler,
		JWTService:         jwtService,
		RateLimiter:        security.NewRateLimiter(requests, time.Minute, 100),
		CORS:               security.NewCORSMiddleware([]string{"https://web.telegram.org"}),
		MaxRequestSize:     1024,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	router := newTestRouter(t, 1000)

	tests := []struct {
		method string
		url    string
		origin string
		token  string
		status int
	}{
		{"GET", "/api/leaderboard", "", "", http.StatusOK},
		{"POST", "/api/telegram/verify", "", "", http.StatusForbidden},
		{"POST", "/api/telegram/verify", "https://web.telegram.org", "", http.StatusOK},
		{"POST", "/api/user/upsert", "https://web.telegram.org", "", http.StatusUnauthorized},
		{"GET", "/api/user/me", "https://web.telegram.org", "", http.StatusUnauthorized},
		{"POST", "/api/deposit", "https://web.telegram.org", "", http.StatusUnauthorized},
		{"POST", "/api/withdraw", "https://web.telegram.org", "", http.StatusUnauthorized},
		{"GET", "/api/balance", "https://web.telegram.org", "", http.StatusUnauthorized},
		{"GET", "/api/deposits", "https://web.telegram.org", "", http.StatusUnauthorized},
		{"GET", "/api/withdrawals", "https://web.telegram.org", "", http.StatusUnauthorized},
		{"GET", "/api/balance", "", "good", http.StatusForbidden},
		{"POST", "/api/user/upsert", "https://t.me", "good", http.StatusOK},
		{"GET", "/api/user/me", "https://web.telegram.org", "good", http.StatusOK},
		{"POST", "/api/deposit", "https://web.telegram.org", "good", http.StatusOK},
		{"POST", "/api/withdraw", "https://web.telegram.org", "good", http.StatusOK},
		{"GET", "/api/balance", "https://web.telegram.org", "good", http.StatusOK},
		{"GET", "/api/deposits", "https://web.telegram.org", "good", http.StatusOK},
		{"GET", "/api/withdrawals", "https://web.telegram.org", "good", http.StatusOK},
		{"OPTIONS", "/api/deposit", "https://web.telegram.org", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestInitRoutesRateLimit(t *testing.T) {
	router := newTestRouter(t, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A token moves the caller into its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInitRoutesRequestSize(t *testing.T) {
	router := newTestRouter(t, 1000)

	req := httptest.NewRequest(http.MethodPost, "/api/telegram/verify", strings.NewReader(strings.Repeat("a", 2048)))
	req.Header.Set("Origin", "https://web.telegram.org")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
