package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/starboard/internal/domain"
	"github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/telegram"
)

var (
	ErrInvalidInitData = errors.New("invalid init data")
	ErrUserNotFound    = errors.New("user not found")
)

type Repo interface {
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, tgID int64) (*domain.User, error)
}

type Verifier interface {
	Validate(initData string) (*telegram.InitData, error)
}

type Service struct {
	userRepo   Repo
	verifier   Verifier
	jwtService auth.JWTServiceInterface
	tokenTTL   time.Duration
}

func New(repo Repo, verifier Verifier, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:   repo,
		verifier:   verifier,
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
	}
}

// Verify checks the Mini App launch data and stores the Telegram profile it carries.
func (s *Service) Verify(ctx context.Context, initData string) (*domain.User, error) {
	data, err := s.verifier.Validate(initData)
	if err != nil {
		zap.L().Info("init data rejected", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidInitData, err)
	}

	user, err := s.userRepo.Upsert(ctx, &domain.User{
		TgID:      data.User.ID,
		Username:  data.User.Username,
		FirstName: data.User.FirstName,
		LastName:  data.User.LastName,
		PhotoURL:  data.User.PhotoURL,
	})
	if err != nil {
		zap.L().Error("can't save verified user", zap.Int64("tg_id", data.User.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("user verified", zap.Int64("tg_id", user.TgID))
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error) {
	updated, err := s.userRepo.Upsert(ctx, user)
	if err != nil {
		zap.L().Error("can't update profile", zap.Int64("tg_id", user.TgID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetProfile(ctx context.Context, tgID int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, tgID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GenerateToken(tgID int64) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(tgID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
