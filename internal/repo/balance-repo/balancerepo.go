package balancerepo

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

func (r *Repository) TopBalances(ctx context.Context, limit int) ([]domain.Balance, error) {
	query := `
		SELECT tg_id, total_deposited, total_withdrawn, current_balance
		FROM v_user_balances
		ORDER BY current_balance DESC, tg_id
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch top balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.Balance
	for rows.Next() {
		var b domain.Balance
		if err := rows.Scan(&b.TgID, &b.TotalDeposited, &b.TotalWithdrawn, &b.CurrentBalance); err != nil {
			zap.L().Error("failed to scan balance row", zap.Error(err))
			return nil, err
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate balance rows", zap.Error(err))
		return nil, err
	}
	return balances, nil
}
