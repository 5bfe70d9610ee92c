package repo

import (
	"github.com/GlebRadaev/starboard/internal/pg"
	balancerepo "github.com/GlebRadaev/starboard/internal/repo/balance-repo"
	depositrepo "github.com/GlebRadaev/starboard/internal/repo/deposit-repo"
	userrepo "github.com/GlebRadaev/starboard/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/starboard/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/starboard/internal/service/authservice"
	"github.com/GlebRadaev/starboard/internal/service/balanceservice"
	"github.com/GlebRadaev/starboard/internal/service/leaderboardservice"
)

// UserRepo serves both profile writes and the leaderboard's profile lookups.
type UserRepo interface {
	authservice.Repo
	leaderboardservice.ProfileRepo
}

type Repositories struct {
	TxManager      pg.TXManager
	UserRepo       UserRepo
	DepositRepo    balanceservice.DepositRepo
	WithdrawalRepo balanceservice.WithdrawalRepo
	BalanceRepo    leaderboardservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		TxManager:      txManager,
		UserRepo:       userrepo.New(conn),
		DepositRepo:    depositrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		BalanceRepo:    balancerepo.New(conn),
	}
}
