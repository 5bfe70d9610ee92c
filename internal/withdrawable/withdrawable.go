// Package withdrawable computes how much of a user's deposited stars may be
// withdrawn at a given instant.
//
// Deposits mature after a fixed MaturationPeriod. All matured deposits form a
// single pool and every withdrawal is debited against that pool; individual
// deposits are never matched to individual withdrawals.
package withdrawable

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/starboard/internal/domain"
)

// MaturationPeriod is a fixed duration, not 21 calendar days.
const MaturationPeriod = 21 * 24 * time.Hour

// Cutoff returns the newest creation time a deposit may have and still be
// unlocked at now.
func Cutoff(now time.Time) time.Time {
	return now.Add(-MaturationPeriod)
}

// UnlocksAt returns the instant a deposit created at createdAt becomes unlocked.
func UnlocksAt(createdAt time.Time) time.Time {
	return createdAt.Add(MaturationPeriod)
}

// IsUnlocked reports whether a deposit created at createdAt is matured at now.
// A deposit exactly MaturationPeriod old is unlocked.
func IsUnlocked(createdAt, now time.Time) bool {
	return !createdAt.After(Cutoff(now))
}

// Split sums deposits into matured and still locked totals.
func Split(deposits []domain.Deposit, now time.Time) (unlocked, locked decimal.Decimal) {
	unlocked, locked = decimal.Zero, decimal.Zero
	for _, d := range deposits {
		if IsUnlocked(d.CreatedAt, now) {
			unlocked = unlocked.Add(amount(d.Amount))
		} else {
			locked = locked.Add(amount(d.Amount))
		}
	}
	return unlocked, locked
}

// Withdrawn sums all withdrawal amounts regardless of when they happened.
func Withdrawn(withdrawals []domain.Withdrawal) decimal.Decimal {
	total := decimal.Zero
	for _, w := range withdrawals {
		total = total.Add(amount(w.Amount))
	}
	return total
}

// Compute returns max(0, matured deposits - all withdrawals) at now.
func Compute(deposits []domain.Deposit, withdrawals []domain.Withdrawal, now time.Time) decimal.Decimal {
	unlocked, _ := Split(deposits, now)
	rest := unlocked.Sub(Withdrawn(withdrawals))
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// ComputeNow is Compute against the wall clock.
func ComputeNow(deposits []domain.Deposit, withdrawals []domain.Withdrawal) decimal.Decimal {
	return Compute(deposits, withdrawals, time.Now())
}

func amount(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
