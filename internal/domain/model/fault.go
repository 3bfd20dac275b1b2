package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies a failure at one of the bridge's boundaries.
type FailureKind string

const (
	// ConfigMissing means a required setting is absent; the operation aborts early.
	ConfigMissing FailureKind = "CONFIG_MISSING"
	// NetworkFailure means a transport-level failure (timeout, DNS, refused connection).
	NetworkFailure FailureKind = "NETWORK_FAILURE"
	// UpstreamStatusError means the provider answered with a non-2xx status.
	UpstreamStatusError FailureKind = "UPSTREAM_STATUS_ERROR"
	// ParseError means the response shape was not the expected one.
	ParseError FailureKind = "PARSE_ERROR"
	// StoreUnavailable means the store connection could not be established.
	StoreUnavailable FailureKind = "STORE_UNAVAILABLE"
	// PersistenceError means an insert failed after the store was reached.
	PersistenceError FailureKind = "PERSISTENCE_ERROR"
)

// Fault is a tagged failure value. Boundaries return it instead of throwing,
// so callers branch on the kind rather than on error identity.
type Fault struct {
	Kind FailureKind
	Err  error
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// NewFault wraps a cause with a failure kind.
func NewFault(kind FailureKind, err error) *Fault {
	return &Fault{Kind: kind, Err: err}
}

// Faultf builds a fault from a formatted message.
func Faultf(kind FailureKind, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the failure kind from an error chain.
// It returns an empty kind when no Fault is present.
func KindOf(err error) FailureKind {
	var fault *Fault
	if errors.As(err, &fault) {
		return fault.Kind
	}
	return ""
}
