package withdrawalrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/starboard/internal/domain"
	"github.com/GlebRadaev/starboard/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// LockUser takes a transaction-scoped advisory lock on the user. Callers must be
// inside pg.TXManager.Begin, otherwise the lock is released immediately.
func (r *Repository) LockUser(ctx context.Context, tgID int64) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, tgID); err != nil {
		zap.L().Error("can't lock user", zap.Int64("tg_id", tgID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
		INSERT INTO withdrawals (tg_id, amount)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.TgID, withdrawal.Amount).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Int64("tg_id", withdrawal.TgID), zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) GetWithdrawalsByUserID(ctx context.Context, tgID int64) ([]domain.Withdrawal, error) {
	query := `
		SELECT id, tg_id, amount, created_at
		FROM withdrawals
		WHERE tg_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, tgID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Int64("tg_id", tgID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		if err := rows.Scan(&wd.ID, &wd.TgID, &wd.Amount, &wd.CreatedAt); err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate withdrawal rows", zap.Error(err))
		return nil, err
	}

	return withdrawals, nil
}
