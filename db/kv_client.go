package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for a missing key. Callers treat it as
// "no value yet", never as a failure.
var ErrKeyNotFound = errors.New("key not found")

// KVClient defines the key-value operations the app-state DAO needs:
// watermark, settings, and notification-visit timestamps.
type KVClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	GetContext() context.Context
	Ping() error
}
