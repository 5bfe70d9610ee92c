package balanceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/starboard/internal/domain"
	"github.com/GlebRadaev/starboard/internal/pg"
	"github.com/GlebRadaev/starboard/internal/withdrawable"
)

type DepositRepo interface {
	CreateDeposit(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	GetDepositsByUserID(ctx context.Context, tgID int64) ([]domain.Deposit, error)
}

type WithdrawalRepo interface {
	LockUser(ctx context.Context, tgID int64) error
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsByUserID(ctx context.Context, tgID int64) ([]domain.Withdrawal, error)
}

type Notifier interface {
	Notify(ctx context.Context, tgID int64, text string)
}

type Service struct {
	txManager      pg.TXManager
	depositRepo    DepositRepo
	withdrawalRepo WithdrawalRepo
	notifier       Notifier
	now            func() time.Time
}

func New(txManager pg.TXManager, depositRepo DepositRepo, withdrawalRepo WithdrawalRepo, notifier Notifier) *Service {
	return &Service{
		txManager:      txManager,
		depositRepo:    depositRepo,
		withdrawalRepo: withdrawalRepo,
		notifier:       notifier,
		now:            time.Now,
	}
}

var (
	ErrExceedsWithdrawable = errors.New("amount exceeds withdrawable")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

func (s *Service) Deposit(ctx context.Context, tgID int64, amount decimal.Decimal) (*domain.Deposit, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	deposit, err := s.depositRepo.CreateDeposit(ctx, &domain.Deposit{
		TgID:   tgID,
		Amount: domain.NewAmount(amount),
	})
	if err != nil {
		zap.L().Error("failed to create deposit", zap.Int64("tg_id", tgID), zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, tgID, fmt.Sprintf(
		"Deposit of %s stars received. It becomes withdrawable on %s.",
		amount.String(), withdrawable.UnlocksAt(deposit.CreatedAt).UTC().Format("02 Jan 2006 15:04 MST"),
	))
	return deposit, nil
}

// Withdraw checks the request against the withdrawable amount and records it.
// The check and the insert run under one per-user lock, so concurrent requests
// for the same user cannot overdraw the matured pool.
func (s *Service) Withdraw(ctx context.Context, tgID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	var remaining decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.withdrawalRepo.LockUser(ctx, tgID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		deposits, err := s.depositRepo.GetDepositsByUserID(ctx, tgID)
		if err != nil {
			return fmt.Errorf("get deposits: %w", err)
		}
		withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, tgID)
		if err != nil {
			return fmt.Errorf("get withdrawals: %w", err)
		}

		available := withdrawable.Compute(deposits, withdrawals, s.now())
		if amount.GreaterThan(available) {
			zap.L().Info("withdrawal rejected",
				zap.Int64("tg_id", tgID),
				zap.String("amount", amount.String()),
				zap.String("withdrawable", available.String()),
			)
			return ErrExceedsWithdrawable
		}

		if _, err := s.withdrawalRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			TgID:   tgID,
			Amount: domain.NewAmount(amount),
		}); err != nil {
			return fmt.Errorf("create withdrawal: %w", err)
		}

		remaining = available.Sub(amount)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrExceedsWithdrawable) {
			zap.L().Error("failed to withdraw", zap.Int64("tg_id", tgID), zap.Error(err))
		}
		return decimal.Zero, err
	}

	s.notifier.Notify(ctx, tgID, fmt.Sprintf(
		"Withdrawal of %s stars completed. Withdrawable now: %s.", amount.String(), remaining.String(),
	))
	return remaining, nil
}

func (s *Service) GetBalance(ctx context.Context, tgID int64) (*domain.Balance, error) {
	deposits, withdrawals, err := s.history(ctx, tgID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	unlocked, locked := withdrawable.Split(deposits, now)
	deposited := unlocked.Add(locked)
	withdrawn := withdrawable.Withdrawn(withdrawals)

	return &domain.Balance{
		TgID:           tgID,
		TotalDeposited: deposited,
		TotalWithdrawn: withdrawn,
		CurrentBalance: deposited.Sub(withdrawn),
		Withdrawable:   withdrawable.Compute(deposits, withdrawals, now),
		Locked:         locked,
	}, nil
}

func (s *Service) Withdrawable(ctx context.Context, tgID int64) (decimal.Decimal, error) {
	deposits, withdrawals, err := s.history(ctx, tgID)
	if err != nil {
		return decimal.Zero, err
	}
	return withdrawable.Compute(deposits, withdrawals, s.now()), nil
}

func (s *Service) GetDeposits(ctx context.Context, tgID int64) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.GetDepositsByUserID(ctx, tgID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, tgID int64) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.GetWithdrawalsByUserID(ctx, tgID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) history(ctx context.Context, tgID int64) ([]domain.Deposit, []domain.Withdrawal, error) {
	var (
		deposits    []domain.Deposit
		withdrawals []domain.Withdrawal
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deposits, err = s.depositRepo.GetDepositsByUserID(gCtx, tgID)
		return err
	})
	g.Go(func() error {
		var err error
		withdrawals, err = s.withdrawalRepo.GetWithdrawalsByUserID(gCtx, tgID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to fetch balance history", zap.Int64("tg_id", tgID), zap.Error(err))
		return nil, nil, err
	}
	return deposits, withdrawals, nil
}
