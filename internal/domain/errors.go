package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches any *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("invalid simulation configuration")
	// ErrDomain matches any *DomainError via errors.Is.
	ErrDomain = errors.New("simulation domain error")
)

// ConfigurationError reports a caller mistake in a SimulationConfig. It is
// raised before any trial executes and is never retried.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// NewConfigurationError builds a ConfigurationError with a formatted reason.
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// DomainError reports a numeric failure inside a trial, such as a Beta draw
// with unusable shape parameters.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// NewDomainError builds a DomainError with a formatted reason.
func NewDomainError(op, format string, args ...any) *DomainError {
	return &DomainError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
