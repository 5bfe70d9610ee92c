package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(db *DB) TransactionalFn
		expectErr bool
	}{
		{
			name: "Commit on success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1)`)).
					WithArgs(int64(7)).
					WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectCommit()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(7))
					return err
				}
			},
		},
		{
			name: "Rollback when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					return errors.New("boom")
				}
			},
			expectErr: true,
		},
		{
			name: "Begin error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			fn: func(db *DB) TransactionalFn {
				return func(ctx context.Context) error {
					t.Error("fn must not run")
					return nil
				}
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.mockSetup(mock)
			db := New(mock)
			manager := NewTXManager(mock)

			err = manager.Begin(context.Background(), tt.fn(db))
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_NestedBeginReusesTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	manager := NewTXManager(mock)
	calls := 0
	err = manager.Begin(context.Background(), func(ctx context.Context) error {
		return manager.Begin(ctx, func(ctx context.Context) error {
			calls++
			return nil
		})
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_UsesPoolOutsideTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM deposits`)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))

	tag, err := New(mock).Exec(context.Background(), `DELETE FROM deposits`)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), tag.RowsAffected())
	assert.NoError(t, mock.ExpectationsWereMet())
}
