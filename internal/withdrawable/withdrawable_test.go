package withdrawable

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/starboard/internal/domain"
)

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

func deposit(age time.Duration, amount int64) domain.Deposit {
	return domain.Deposit{
		Amount:    domain.NewAmount(decimal.NewFromInt(amount)),
		CreatedAt: now.Add(-age),
	}
}

func withdrawal(amount int64) domain.Withdrawal {
	return domain.Withdrawal{Amount: domain.NewAmount(decimal.NewFromInt(amount))}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name        string
		deposits    []domain.Deposit
		withdrawals []domain.Withdrawal
		expected    int64
	}{
		{
			name:     "No deposits, no withdrawals",
			expected: 0,
		},
		{
			name:     "Deposit younger than 21 days is locked",
			deposits: []domain.Deposit{deposit(20*day, 100)},
			expected: 0,
		},
		{
			name:     "Deposit exactly 21 days old is unlocked",
			deposits: []domain.Deposit{deposit(21*day, 100)},
			expected: 100,
		},
		{
			name:     "Deposit one second short of 21 days is locked",
			deposits: []domain.Deposit{deposit(21*day-time.Second, 100)},
			expected: 0,
		},
		{
			name:     "Old deposit is unlocked",
			deposits: []domain.Deposit{deposit(30*day, 100)},
			expected: 100,
		},
		{
			name:        "Withdrawals are subtracted",
			deposits:    []domain.Deposit{deposit(40*day, 200)},
			withdrawals: []domain.Withdrawal{withdrawal(50)},
			expected:    150,
		},
		{
			name:        "Result never goes negative",
			deposits:    []domain.Deposit{deposit(40*day, 100)},
			withdrawals: []domain.Withdrawal{withdrawal(200)},
			expected:    0,
		},
		{
			name:     "Mixed ages only count matured deposits",
			deposits: []domain.Deposit{deposit(25*day, 100), deposit(5*day, 300), deposit(60*day, 200)},
			expected: 300,
		},
		{
			name:        "Withdrawal larger than any single deposit is debited from the pool",
			deposits:    []domain.Deposit{deposit(30*day, 100), deposit(45*day, 100), deposit(2*day, 500)},
			withdrawals: []domain.Withdrawal{withdrawal(150)},
			expected:    50,
		},
		{
			name:        "Locked deposits do not cover withdrawals",
			deposits:    []domain.Deposit{deposit(30*day, 50), deposit(1*day, 1000)},
			withdrawals: []domain.Withdrawal{withdrawal(40), withdrawal(30)},
			expected:    0,
		},
		{
			name: "Missing amounts count as zero",
			deposits: []domain.Deposit{
				deposit(30*day, 100),
				{CreatedAt: now.Add(-30 * day)},
			},
			withdrawals: []domain.Withdrawal{{}, withdrawal(10)},
			expected:    90,
		},
		{
			name:     "Future deposit is locked",
			deposits: []domain.Deposit{deposit(-day, 100)},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compute(tt.deposits, tt.withdrawals, now)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(result), "expected %d, got %s", tt.expected, result)
			assert.False(t, result.IsNegative())
		})
	}
}

func TestCompute_OrderIndependent(t *testing.T) {
	deposits := []domain.Deposit{deposit(25*day, 100), deposit(5*day, 300), deposit(60*day, 200)}
	reversed := []domain.Deposit{deposits[2], deposits[1], deposits[0]}

	assert.True(t, Compute(deposits, nil, now).Equal(Compute(reversed, nil, now)))
}

func TestCompute_EmptyForAnyNow(t *testing.T) {
	for _, at := range []time.Time{{}, now, now.Add(1000 * day), time.Unix(0, 0)} {
		assert.True(t, Compute(nil, nil, at).IsZero())
		assert.True(t, Compute([]domain.Deposit{}, []domain.Withdrawal{}, at).IsZero())
	}
}

func TestCompute_Monotonic(t *testing.T) {
	deposits := []domain.Deposit{deposit(30*day, 100), deposit(40*day, 250)}

	prev := Compute(deposits, nil, now)
	var withdrawals []domain.Withdrawal
	for i := 0; i < 10; i++ {
		withdrawals = append(withdrawals, withdrawal(45))
		cur := Compute(deposits, withdrawals, now)
		assert.True(t, cur.LessThanOrEqual(prev), "withdrawing more must not raise the result")
		prev = cur
	}

	withdrawals = []domain.Withdrawal{withdrawal(120)}
	prev = Compute(nil, withdrawals, now)
	var grown []domain.Deposit
	for i := 0; i < 10; i++ {
		grown = append(grown, deposit(time.Duration(22+i)*day, 30))
		cur := Compute(grown, withdrawals, now)
		assert.True(t, cur.GreaterThanOrEqual(prev), "depositing more must not lower the result")
		prev = cur
	}
}

func TestSplit(t *testing.T) {
	deposits := []domain.Deposit{deposit(25*day, 100), deposit(5*day, 300), deposit(60*day, 200), {CreatedAt: now}}

	unlocked, locked := Split(deposits, now)

	assert.Equal(t, "300", unlocked.String())
	assert.Equal(t, "300", locked.String())
}

func TestUnlocksAt(t *testing.T) {
	created := now.Add(-21 * day)

	assert.Equal(t, now, UnlocksAt(created))
	assert.True(t, IsUnlocked(created, now))
	assert.False(t, IsUnlocked(created.Add(time.Nanosecond), now))
}

func TestComputeNow(t *testing.T) {
	deposits := []domain.Deposit{
		{Amount: domain.NewAmount(decimal.NewFromInt(70)), CreatedAt: time.Now().Add(-22 * day)},
		{Amount: domain.NewAmount(decimal.NewFromInt(30)), CreatedAt: time.Now().Add(-time.Hour)},
	}

	assert.Equal(t, "70", ComputeNow(deposits, nil).String())
}
