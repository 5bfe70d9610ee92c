package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/starboard/internal/domain"
	"github.com/GlebRadaev/starboard/internal/dto"
	"github.com/GlebRadaev/starboard/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/utils"
	"github.com/GlebRadaev/starboard/pkg/validate"
)

type Service interface {
	Verify(ctx context.Context, initData string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) (*domain.User, error)
	GetProfile(ctx context.Context, tgID int64) (*domain.User, error)
	GenerateToken(tgID int64) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Verify godoc
//
//	@Summary		Verify Telegram init data
//	@Description	Check the signature of Telegram WebApp initData, store the profile it carries and issue a JWT.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyRequestDTO	true	"Raw initData string"
//	@Success		200		{object}	dto.VerifyResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid init data"
//	@Failure		403		{object}	utils.Response	"Not a Telegram origin"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/telegram/verify [post]
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequestDTO
	if err := validate.Decode(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Verify(r.Context(), req.InitData)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidInitData) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid init data")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := h.authService.GenerateToken(user.TgID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{
		OK:    true,
		Token: token,
		User:  toProfileDTO(user),
	})
}

// Upsert godoc
//
//	@Summary		Update own profile
//	@Description	Replace the authenticated user's display profile.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpsertProfileRequestDTO	true	"Profile fields"
//	@Success		200		{object}	dto.OKResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid profile"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"tg_id does not match the token"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/upsert [post]
func (h *AuthHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	tgID, _ := pkgauth.UserIDFromContext(r.Context())

	var req dto.UpsertProfileRequestDTO
	if err := validate.Decode(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.TgID != 0 && req.TgID != tgID {
		utils.RespondWithError(w, http.StatusForbidden, "tg_id does not match the authenticated user")
		return
	}

	_, err := h.authService.UpdateProfile(r.Context(), &domain.User{
		TgID:      tgID,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save user data")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OKResponseDTO{OK: true})
}

// Me godoc
//
//	@Summary		Get own profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	tgID, _ := pkgauth.UserIDFromContext(r.Context())

	user, err := h.authService.GetProfile(r.Context(), tgID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(user))
}

func toProfileDTO(user *domain.User) dto.ProfileDTO {
	return dto.ProfileDTO{
		TgID:      user.TgID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		PhotoURL:  user.PhotoURL,
	}
}
