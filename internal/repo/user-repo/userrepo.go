package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (tg_id, username, first_name, last_name, photo_url)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		ON CONFLICT (tg_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			photo_url = EXCLUDED.photo_url,
			updated_at = now()
		RETURNING created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, user.TgID, user.Username, user.FirstName, user.LastName, user.PhotoURL).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		zap.L().Error("can't upsert user", zap.Int64("tg_id", user.TgID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, tgID int64) (*domain.User, error) {
	query := `
		SELECT tg_id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(photo_url, ''), created_at, updated_at
		FROM users
		WHERE tg_id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, tgID).
		Scan(&user.TgID, &user.Username, &user.FirstName, &user.LastName, &user.PhotoURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int64("tg_id", tgID), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByIDs(ctx context.Context, tgIDs []int64) ([]domain.User, error) {
	if len(tgIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT tg_id, COALESCE(username, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(photo_url, ''), created_at, updated_at
		FROM users
		WHERE tg_id = ANY($1)
	`
	rows, err := repo.db.Query(ctx, query, tgIDs)
	if err != nil {
		zap.L().Error("can't fetch users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.TgID, &user.Username, &user.FirstName, &user.LastName, &user.PhotoURL, &user.CreatedAt, &user.UpdatedAt); err != nil {
			zap.L().Error("failed to scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate user rows", zap.Error(err))
		return nil, err
	}
	return users, nil
}
