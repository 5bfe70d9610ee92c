package depositrepo

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

func (r *Repository) CreateDeposit(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (tg_id, amount)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, deposit.TgID, deposit.Amount).Scan(&deposit.ID, &deposit.CreatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Int64("tg_id", deposit.TgID), zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

func (r *Repository) GetDepositsByUserID(ctx context.Context, tgID int64) ([]domain.Deposit, error) {
	query := `
		SELECT id, tg_id, amount, created_at
		FROM deposits
		WHERE tg_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, tgID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Int64("tg_id", tgID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var d domain.Deposit
		if err := rows.Scan(&d.ID, &d.TgID, &d.Amount, &d.CreatedAt); err != nil {
			zap.L().Error("failed to scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate deposit rows", zap.Error(err))
		return nil, err
	}

	return deposits, nil
}
