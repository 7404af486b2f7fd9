// Package config abstracts runtime configuration behind a typed getter
// interface. The production implementation is Viper with file watching; an
// in-memory variant backs tests.
package config

import (
	"io"
	"time"
)

// Config retrieves typed configuration values. Implementations return the
// zero value when a key is missing or cannot be converted, so callers keep
// their defaults explicit at the call site.
type Config interface {
	io.Closer

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetInt64 retrieves the value for key as an int64.
	GetInt64(key string) int64

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetHour retrieves the value for key as a duration in hours.
	GetHour(key string) time.Duration

	// GetBinary retrieves the value for key as raw bytes. The stored value
	// is base64 encoded.
	GetBinary(key string) []byte

	// GetArray retrieves the value for key as a string slice. The stored
	// value uses the format <element1>,<element2>,...
	GetArray(key string) []string

	// GetMap retrieves the value for key as a string map. The stored value
	// uses the format <key1>:<value1>,<key2>:<value2>,...
	GetMap(key string) map[string]string
}
