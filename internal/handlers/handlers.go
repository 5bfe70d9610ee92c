package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/starboard/docs"
	"github.com/GlebRadaev/starboard/internal/config"
	authhandlers "github.com/GlebRadaev/starboard/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/starboard/internal/handlers/balance"
	leaderboardhandlers "github.com/GlebRadaev/starboard/internal/handlers/leaderboard"
	"github.com/GlebRadaev/starboard/internal/service"
	"github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/security"
)

type AuthHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type LeaderboardHandler interface {
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	BalanceHandler     BalanceHandler
	LeaderboardHandler LeaderboardHandler

	JWTService     auth.JWTServiceInterface
	RateLimiter    *security.RateLimiter
	CORS           *security.CORSMiddleware
	MaxRequestSize int64
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		BalanceHandler:     balancehandlers.New(s.BalanceService),
		LeaderboardHandler: leaderboardhandlers.New(s.LeaderboardService),
		JWTService:         s.JWTService,
		RateLimiter:        security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitCapacity),
		CORS:               security.NewCORSMiddleware(cfg.AllowedOrigins),
		MaxRequestSize:     cfg.MaxRequestSize,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		security.RequestSize(h.MaxRequestSize),
		security.UserAgentLogger,
		security.SecureHeaders,
		h.CORS.Handler,
		security.OriginGuard("/api/leaderboard"),
		security.URLPatternLogger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		// The limiter keys on the user id, so the token is read first.
		r.Use(auth.OptionalAuth(h.JWTService), h.RateLimiter.Handler)

		r.Get("/leaderboard", h.LeaderboardHandler.GetLeaderboard)
		r.Post("/telegram/verify", h.AuthHandler.Verify)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))
			r.Route("/user", func(r chi.Router) {
				r.Post("/upsert", h.AuthHandler.Upsert)
				r.Get("/me", h.AuthHandler.Me)
			})
			r.Post("/deposit", h.BalanceHandler.Deposit)
			r.Post("/withdraw", h.BalanceHandler.Withdraw)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/deposits", h.BalanceHandler.GetDeposits)
			r.Get("/withdrawals", h.BalanceHandler.GetWithdrawals)
		})
	})

	return r
}
