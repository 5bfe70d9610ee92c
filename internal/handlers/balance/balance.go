package balance

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/starboard/internal/domain"
	"github.com/GlebRadaev/starboard/internal/dto"
	"github.com/GlebRadaev/starboard/internal/service/balanceservice"
	"github.com/GlebRadaev/starboard/internal/withdrawable"
	"github.com/GlebRadaev/starboard/pkg/auth"
	"github.com/GlebRadaev/starboard/pkg/utils"
	"github.com/GlebRadaev/starboard/pkg/validate"
)

type Service interface {
	Deposit(ctx context.Context, tgID int64, amount decimal.Decimal) (*domain.Deposit, error)
	Withdraw(ctx context.Context, tgID int64, amount decimal.Decimal) (decimal.Decimal, error)
	GetBalance(ctx context.Context, tgID int64) (*domain.Balance, error)
	GetDeposits(ctx context.Context, tgID int64) ([]domain.Deposit, error)
	GetWithdrawals(ctx context.Context, tgID int64) ([]domain.Withdrawal, error)
}

type BalanceHandler struct {
	balanceService Service
	now            func() time.Time
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		now:            time.Now,
	}
}

// Deposit godoc
//
//	@Summary		Deposit stars
//	@Description	Record a deposit for the authenticated user. It becomes withdrawable 21 days later.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Whole number of stars, 1..1000000"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"tg_id does not match the token"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deposit [post]
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	tgID, amount, ok := h.readAmount(w, r)
	if !ok {
		return
	}

	deposit, err := h.balanceService.Deposit(r.Context(), tgID, amount)
	if err != nil {
		if errors.Is(err, balanceservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		OK:        true,
		ID:        deposit.ID,
		Amount:    deposit.Amount.Decimal,
		CreatedAt: deposit.CreatedAt,
		UnlocksAt: withdrawable.UnlocksAt(deposit.CreatedAt),
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw stars
//	@Description	Withdraw from matured deposits. Responds with the amount still withdrawable afterwards.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Whole number of stars, 1..1000000"
//	@Success		200		{object}	dto.WithdrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount exceeds withdrawable"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"tg_id does not match the token"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdraw [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	tgID, amount, ok := h.readAmount(w, r)
	if !ok {
		return
	}

	remaining, err := h.balanceService.Withdraw(r.Context(), tgID, amount)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrExceedsWithdrawable):
			utils.RespondWithError(w, http.StatusBadRequest, "Amount exceeds withdrawable")
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		OK:           true,
		Withdrawable: remaining,
	})
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Current balance, lifetime totals and the split between withdrawable and still locked stars.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	tgID, _ := auth.UserIDFromContext(r.Context())

	balance, err := h.balanceService.GetBalance(r.Context(), tgID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:      balance.CurrentBalance,
		Deposited:    balance.TotalDeposited,
		Withdrawn:    balance.TotalWithdrawn,
		Withdrawable: balance.Withdrawable,
		Locked:       balance.Locked,
	})
}

// GetDeposits godoc
//
//	@Summary		Get deposits history
//	@Description	Deposits of the authenticated user, newest first, with their unlock time.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [get]
func (h *BalanceHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	tgID, _ := auth.UserIDFromContext(r.Context())

	deposits, err := h.balanceService.GetDeposits(r.Context(), tgID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}

	now := h.now()
	response := make([]dto.DepositDTO, len(deposits))
	for i, d := range deposits {
		response[i] = dto.DepositDTO{
			ID:        d.ID,
			Amount:    d.Amount.Decimal,
			CreatedAt: d.CreatedAt,
			UnlocksAt: withdrawable.UnlocksAt(d.CreatedAt),
			Unlocked:  withdrawable.IsUnlocked(d.CreatedAt, now),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawals of the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalDTO
//	@Success		204	{object}	utils.Response	"Withdrawals not found"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	tgID, _ := auth.UserIDFromContext(r.Context())

	withdrawals, err := h.balanceService.GetWithdrawals(r.Context(), tgID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.WithdrawalDTO{
			ID:        wd.ID,
			Amount:    wd.Amount.Decimal,
			CreatedAt: wd.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// readAmount decodes an AmountRequestDTO and writes the error response itself
// when the body is unusable.
func (h *BalanceHandler) readAmount(w http.ResponseWriter, r *http.Request) (int64, decimal.Decimal, bool) {
	tgID, _ := auth.UserIDFromContext(r.Context())

	var req dto.AmountRequestDTO
	if err := validate.Decode(r.Body, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return 0, decimal.Zero, false
	}
	if req.TgID != 0 && req.TgID != tgID {
		utils.RespondWithError(w, http.StatusForbidden, "tg_id does not match the authenticated user")
		return 0, decimal.Zero, false
	}
	return tgID, decimal.NewFromInt(req.Amount), true
}
