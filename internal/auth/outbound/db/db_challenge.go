package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/codecafelab/phoneauth/internal/auth/entity"
)

const getChallengeByPhoneSQL = `
SELECT phone, otp_code, remember_token, verify_token, state, request_count, error_count, updated_at
FROM otp_challenges
WHERE phone = $1
`

func (s *DB) GetChallengeByPhone(ctx context.Context, phone string) (_ *entity.Challenge, err error) {
	ctx, span := s.startSpan(ctx, "GetChallengeByPhone")
	defer func() { s.endSpan(span, err) }()

	var ch entity.Challenge
	var updatedAt pgtype.Timestamptz

	err = s.conn.QueryRow(ctx, getChallengeByPhoneSQL, phone).Scan(
		&ch.Phone,
		&ch.OtpCode,
		&ch.RememberToken,
		&ch.VerifyToken,
		&ch.State,
		&ch.RequestCount,
		&ch.ErrorCount,
		&updatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	ch.UpdatedAt = updatedAt.Time

	return &ch, nil
}

// The challenge row is the rolling per-phone ledger, so writes are a single
// upsert keyed by phone. updated_at is written explicitly because the
// business layer anchors its expiry windows on it.
const upsertChallengeSQL = `
INSERT INTO otp_challenges (phone, otp_code, remember_token, verify_token, state, request_count, error_count, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (phone) DO UPDATE SET
	otp_code = EXCLUDED.otp_code,
	remember_token = EXCLUDED.remember_token,
	verify_token = EXCLUDED.verify_token,
	state = EXCLUDED.state,
	request_count = EXCLUDED.request_count,
	error_count = EXCLUDED.error_count,
	updated_at = EXCLUDED.updated_at
`

func (s *DB) UpsertChallenge(ctx context.Context, ch entity.Challenge) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertChallenge")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, upsertChallengeSQL,
		ch.Phone,
		ch.OtpCode,
		ch.RememberToken,
		ch.VerifyToken,
		ch.State,
		ch.RequestCount,
		ch.ErrorCount,
		pgtype.Timestamptz{Time: ch.UpdatedAt, Valid: true},
	)
	err = s.mapError(err)
	return err
}
