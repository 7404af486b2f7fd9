package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codecafelab/phoneauth/internal/auth/inbound"
	"github.com/codecafelab/phoneauth/internal/auth/outbound/db"
	"github.com/codecafelab/phoneauth/internal/auth/outbound/mq"
	"github.com/codecafelab/phoneauth/internal/auth/usecase"
	"github.com/codecafelab/phoneauth/internal/pkg/clock"
	"github.com/codecafelab/phoneauth/internal/pkg/config"
	"github.com/codecafelab/phoneauth/internal/pkg/goroutine"
	"github.com/codecafelab/phoneauth/internal/pkg/hash"
	"github.com/codecafelab/phoneauth/internal/pkg/instrument"
	"github.com/codecafelab/phoneauth/internal/pkg/jwt"
	"github.com/codecafelab/phoneauth/internal/pkg/keylock"
	"github.com/codecafelab/phoneauth/internal/pkg/messaging"
	"github.com/codecafelab/phoneauth/internal/pkg/otpcode"
	"github.com/codecafelab/phoneauth/internal/pkg/router"
	"github.com/codecafelab/phoneauth/internal/pkg/token"
	"github.com/codecafelab/phoneauth/internal/pkg/uid"
	"github.com/codecafelab/phoneauth/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Locker     keylock.Locker             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Tokens     token.Generator            `validate:"required"`
	Otp        otpcode.Generator          `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbAuth,
		RepoMessaging: repoMsg,
		Locker:        dep.Locker,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		Tokens:        dep.Tokens,
		Otp:           dep.Otp,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
