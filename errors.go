package genlru

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCapacity = errors.New("capacity must be greater than 0")
	ErrInvalidTTL      = errors.New("ttl must not be negative")
)

// ConfigError reports an option rejected by New or Resize.
// Nothing is mutated when it is returned.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("genlru: invalid %s %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func validCapacity(field string, n int) error {
	if n <= 0 {
		return &ConfigError{Field: field, Value: n, Err: ErrInvalidCapacity}
	}
	return nil
}
