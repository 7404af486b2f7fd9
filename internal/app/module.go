package app

import (
	"log/slog"
	"os"

	"github.com/codecafelab/phoneauth/internal/auth"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(auth.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Bcrypt:     a.bcrypt,
			HMAC:       a.hmac,
			Tokens:     a.tokens,
			Otp:        a.otp,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			DBConn:     a.dbConn,
			Locker:     a.locker,
			Messaging:  a.messaging,
			Goroutine:  a.goroutine,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}
}
