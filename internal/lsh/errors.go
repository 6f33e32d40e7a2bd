package lsh

import (
	"errors"
	"fmt"
)

var (
	// ErrBandsNotDivisor indicates the band count does not evenly divide the signature size.
	ErrBandsNotDivisor = errors.New("num_bands must evenly divide signature_size")
	// ErrNonPositive indicates a size parameter that must be positive is not.
	ErrNonPositive = errors.New("value must be positive")
	// ErrSignatureLength indicates a signature whose length differs from the configured size.
	ErrSignatureLength = errors.New("signature length mismatch")
	// ErrUnknownHash indicates an unsupported hash function name.
	ErrUnknownHash = errors.New("unknown hash function")
)

// ConfigError reports an invalid run parameter. It is fatal and is returned
// before any document is processed.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}
