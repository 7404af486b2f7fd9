package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
)

const getAccountByPhoneSQL = `
SELECT id, phone, password, failure_count, status, last_failure_at, created_at, updated_at
FROM accounts
WHERE phone = $1
`

func (s *DB) GetAccountByPhone(ctx context.Context, phone string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByPhone")
	defer func() { s.endSpan(span, err) }()

	var acc entity.Account
	var lastFailureAt, createdAt, updatedAt pgtype.Timestamptz

	err = s.conn.QueryRow(ctx, getAccountByPhoneSQL, phone).Scan(
		&acc.ID,
		&acc.Phone,
		&acc.Password,
		&acc.FailureCount,
		&acc.Status,
		&lastFailureAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	acc.LastFailureAt = lastFailureAt.Time
	acc.CreatedAt = createdAt.Time
	acc.UpdatedAt = updatedAt.Time

	return &acc, nil
}

const createAccountSQL = `
INSERT INTO accounts (id, phone, password, failure_count, status)
VALUES ($1, $2, $3, $4, $5)
`

func (s *DB) CreateAccount(ctx context.Context, acc entity.Account) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createAccountSQL,
		acc.ID,
		acc.Phone,
		acc.Password,
		acc.FailureCount,
		acc.Status,
	)
	err = s.mapError(err)
	return err
}

const saveAccountLoginStateSQL = `
UPDATE accounts
SET failure_count = $2, status = $3, last_failure_at = $4, updated_at = now()
WHERE id = $1
`

func (s *DB) SaveAccountLoginState(ctx context.Context, acc entity.Account) (err error) {
	ctx, span := s.startSpan(ctx, "SaveAccountLoginState")
	defer func() { s.endSpan(span, err) }()

	lastFailureAt := pgtype.Timestamptz{Time: acc.LastFailureAt, Valid: !acc.LastFailureAt.IsZero()}

	_, err = s.conn.Exec(ctx, saveAccountLoginStateSQL,
		acc.ID,
		acc.FailureCount,
		acc.Status,
		lastFailureAt,
	)
	err = s.mapError(err)
	return err
}
