package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type LeaderboardEntryDTO struct {
	TgID           int64           `json:"tg_id" example:"279058397"`
	CurrentBalance decimal.Decimal `json:"current_balance" swaggertype:"number" example:"480"`
	TotalDeposited decimal.Decimal `json:"total_deposited" swaggertype:"number" example:"600"`
	Withdrawable   decimal.Decimal `json:"withdrawable" swaggertype:"number" example:"180"`
	User           *ProfileDTO     `json:"user"`
}

type LeaderboardResponseDTO struct {
	OK        bool                  `json:"ok" example:"true"`
	Data      []LeaderboardEntryDTO `json:"data"`
	UpdatedAt time.Time             `json:"updated_at" example:"2024-05-01T10:00:30Z"`
}
