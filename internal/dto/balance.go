package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amounts go over the wire as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type AmountRequestDTO struct {
	TgID   int64 `json:"tg_id,omitempty" validate:"omitempty,gt=0" example:"279058397"`
	Amount int64 `json:"amount" validate:"required,gt=0,lte=1000000" example:"100"`
}

type DepositResponseDTO struct {
	OK        bool            `json:"ok" example:"true"`
	ID        int64           `json:"id" example:"17"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"100"`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
	UnlocksAt time.Time       `json:"unlocks_at" example:"2024-05-22T10:00:00Z"`
}

type WithdrawResponseDTO struct {
	OK           bool            `json:"ok" example:"true"`
	Withdrawable decimal.Decimal `json:"withdrawable" swaggertype:"number" example:"130"`
}

type BalanceResponseDTO struct {
	Current      decimal.Decimal `json:"current" swaggertype:"number" example:"480"`
	Deposited    decimal.Decimal `json:"deposited" swaggertype:"number" example:"600"`
	Withdrawn    decimal.Decimal `json:"withdrawn" swaggertype:"number" example:"120"`
	Withdrawable decimal.Decimal `json:"withdrawable" swaggertype:"number" example:"180"`
	Locked       decimal.Decimal `json:"locked" swaggertype:"number" example:"300"`
}

type DepositDTO struct {
	ID        int64           `json:"id" example:"17"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"100"`
	CreatedAt time.Time       `json:"created_at" example:"2024-05-01T10:00:00Z"`
	UnlocksAt time.Time       `json:"unlocks_at" example:"2024-05-22T10:00:00Z"`
	Unlocked  bool            `json:"unlocked" example:"false"`
}

type WithdrawalDTO struct {
	ID        int64           `json:"id" example:"4"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"number" example:"50"`
	CreatedAt time.Time       `json:"created_at" example:"2024-06-01T08:30:00Z"`
}
