package leaderboardservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/starboard/internal/domain"
)

const (
	fanOut       = 8
	buildTimeout = 30 * time.Second
)

type Repo interface {
	TopBalances(ctx context.Context, limit int) ([]domain.Balance, error)
}

type ProfileRepo interface {
	FindByIDs(ctx context.Context, tgIDs []int64) ([]domain.User, error)
}

type WithdrawableSource interface {
	Withdrawable(ctx context.Context, tgID int64) (decimal.Decimal, error)
}

type Snapshot struct {
	Entries   []domain.LeaderboardEntry
	UpdatedAt time.Time
}

type Service struct {
	balanceRepo     Repo
	userRepo        ProfileRepo
	balances        WithdrawableSource
	limit           int
	refreshInterval time.Duration
	now             func() time.Time

	mu       sync.RWMutex
	snapshot *Snapshot
	rebuild  singleflight.Group
}

func New(balanceRepo Repo, userRepo ProfileRepo, balances WithdrawableSource, limit int, refreshInterval time.Duration) *Service {
	return &Service{
		balanceRepo:     balanceRepo,
		userRepo:        userRepo,
		balances:        balances,
		limit:           limit,
		refreshInterval: refreshInterval,
		now:             time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.refreshInterval <= 0 {
		return
	}
	zap.L().Info("Leaderboard refresher started", zap.Duration("interval", s.refreshInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping leaderboard refresher")
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				zap.L().Error("Failed to refresh leaderboard", zap.Error(err))
			}
		}
	}
}

// Leaderboard returns the cached snapshot, rebuilding it when it is missing or
// older than two refresh intervals.
func (s *Service) Leaderboard(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	if snapshot != nil && !s.stale(snapshot) {
		return snapshot, nil
	}
	return s.Refresh(ctx)
}

func (s *Service) stale(snapshot *Snapshot) bool {
	if s.refreshInterval <= 0 {
		return true
	}
	return s.now().Sub(snapshot.UpdatedAt) > 2*s.refreshInterval
}

// Refresh rebuilds the snapshot. Concurrent callers share one rebuild, which
// outlives the caller that started it.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	v, err, _ := s.rebuild.Do("leaderboard", func() (any, error) {
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), buildTimeout)
		defer cancel()

		snapshot, err := s.build(buildCtx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.snapshot = snapshot
		s.mu.Unlock()
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

func (s *Service) build(ctx context.Context) (*Snapshot, error) {
	top, err := s.balanceRepo.TopBalances(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("top balances: %w", err)
	}

	ids := make([]int64, len(top))
	for i, b := range top {
		ids[i] = b.TgID
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	profiles := make(map[int64]domain.User, len(users))
	for _, u := range users {
		profiles[u.TgID] = u
	}

	entries := make([]domain.LeaderboardEntry, len(top))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(fanOut)
	for i, b := range top {
		entries[i].Balance = b
		if u, ok := profiles[b.TgID]; ok {
			entries[i].User = &u
		}

		g.Go(func() error {
			withdrawable, err := s.balances.Withdrawable(gCtx, b.TgID)
			if err != nil {
				return fmt.Errorf("withdrawable for %d: %w", b.TgID, err)
			}
			entries[i].Withdrawable = withdrawable
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Snapshot{Entries: entries, UpdatedAt: s.now()}, nil
}
