package service

import (
	"context"

	"github.com/GlebRadaev/starboard/internal/config"
	"github.com/GlebRadaev/starboard/internal/handlers/auth"
	"github.com/GlebRadaev/starboard/internal/handlers/balance"
	"github.com/GlebRadaev/starboard/internal/handlers/leaderboard"
	"github.com/GlebRadaev/starboard/internal/repo"
	"github.com/GlebRadaev/starboard/internal/service/authservice"
	"github.com/GlebRadaev/starboard/internal/service/balanceservice"
	"github.com/GlebRadaev/starboard/internal/service/leaderboardservice"
	pkgauth "github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/telegram"
)

// LeaderboardService is the leaderboard read side plus its background refresher.
type LeaderboardService interface {
	leaderboard.Service
	Start(ctx context.Context)
}

type Services struct {
	AuthService        auth.Service
	BalanceService     balance.Service
	LeaderboardService LeaderboardService
	JWTService         pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, repo *repo.Repositories, notifier balanceservice.Notifier) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	verifier := telegram.NewValidator(cfg.TelegramBotToken, cfg.InitDataTTL)

	authService := authservice.New(repo.UserRepo, verifier, jwtService, cfg.TokenTTL)
	balanceService := balanceservice.New(repo.TxManager, repo.DepositRepo, repo.WithdrawalRepo, notifier)
	leaderboardService := leaderboardservice.New(repo.BalanceRepo, repo.UserRepo, balanceService, cfg.LeaderboardLimit, cfg.LeaderboardRefresh)

	return &Services{
		AuthService:        authService,
		BalanceService:     balanceService,
		LeaderboardService: leaderboardService,
		JWTService:         jwtService,
	}
}
