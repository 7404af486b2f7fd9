// Package keylock serializes read-modify-write sequences on a shared key
// across service instances. The auth flows lock on the phone number so two
// concurrent requests for the same subscriber cannot interleave their
// counter updates.
package keylock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrLocked is returned when the key is held by another caller.
	ErrLocked = errors.New("key is locked by another operation")
)

const (
	defaultTTL        = 10 * time.Second
	defaultRetryDelay = 50 * time.Millisecond
	defaultRetries    = 3
)

// Locker acquires a mutual-exclusion lock on a key for the duration of fn.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(context.Context) error) error
}

// RedisLocker implements Locker with a Redis SET NX lock. The lock value is
// a random token so only the holder's release deletes the key.
type RedisLocker struct {
	client     *redis.Client
	prefix     string
	ttl        time.Duration
	retryDelay time.Duration
	retries    int
}

// Option configures a RedisLocker.
type Option func(*RedisLocker)

// WithTTL overrides the lock auto-expiry, the upper bound on how long a
// crashed holder blocks the key.
func WithTTL(ttl time.Duration) Option {
	return func(l *RedisLocker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

// WithRetries overrides how many times acquisition is retried before
// giving up with ErrLocked.
func WithRetries(n int, delay time.Duration) Option {
	return func(l *RedisLocker) {
		if n >= 0 {
			l.retries = n
		}
		if delay > 0 {
			l.retryDelay = delay
		}
	}
}

// New returns a RedisLocker.
func New(client *redis.Client, opts ...Option) *RedisLocker {
	l := &RedisLocker{
		client:     client,
		prefix:     "keylock:",
		ttl:        defaultTTL,
		retryDelay: defaultRetryDelay,
		retries:    defaultRetries,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithLock runs fn while holding the lock on key. Acquisition is retried a
// bounded number of times; a still-held key fails with ErrLocked. The lock
// is released afterwards, but only when this caller still holds it.
func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(context.Context) error) error {
	fk := l.prefix + key
	holder := uuid.NewString()

	acquired := false
	for attempt := 0; attempt <= l.retries; attempt++ {
		ok, err := l.client.SetNX(ctx, fk, holder, l.ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			acquired = true
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
	if !acquired {
		return ErrLocked
	}

	defer l.release(context.WithoutCancel(ctx), fk, holder)

	return fn(ctx)
}

var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (l *RedisLocker) release(ctx context.Context, fk, holder string) {
	// Best effort. An unreleased lock expires with the TTL.
	_ = releaseScript.Run(ctx, l.client, []string{fk}, holder).Err()
}

// Noop implements Locker without locking, for tests and single-instance
// deployments without Redis.
type Noop struct{}

// NewNoop returns a Noop locker.
func NewNoop() *Noop {
	return &Noop{}
}

// WithLock runs fn directly.
func (*Noop) WithLock(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}
