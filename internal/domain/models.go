package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	TgID      int64     `db:"tg_id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	PhotoURL  string    `db:"photo_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Deposit amounts are nullable in storage; an invalid amount counts as zero.
type Deposit struct {
	ID        int64               `db:"id"`
	TgID      int64               `db:"tg_id"`
	Amount    decimal.NullDecimal `db:"amount"`
	CreatedAt time.Time           `db:"created_at"`
}

type Withdrawal struct {
	ID        int64               `db:"id"`
	TgID      int64               `db:"tg_id"`
	Amount    decimal.NullDecimal `db:"amount"`
	CreatedAt time.Time           `db:"created_at"`
}

type Balance struct {
	TgID           int64           `db:"tg_id"`
	TotalDeposited decimal.Decimal `db:"total_deposited"`
	TotalWithdrawn decimal.Decimal `db:"total_withdrawn"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	Withdrawable   decimal.Decimal `db:"-"`
	Locked         decimal.Decimal `db:"-"`
}

type LeaderboardEntry struct {
	Balance
	User *User
}

func NewAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
