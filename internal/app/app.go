package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

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

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	tokens    token.Generator
	otp       otpcode.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	locker    keylock.Locker
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
