package domain

import "fmt"

// FailureKind classifies external-collaborator failures for retry and
// user-messaging decisions.
type FailureKind string

const (
	// FailureNotFound: an address could not be resolved; the user must edit input.
	FailureNotFound FailureKind = "not_found"
	// FailureNoRoute: geography is unroutable; not retried.
	FailureNoRoute FailureKind = "no_route"
	// FailureNetwork: transient transport error; retried internally first.
	FailureNetwork FailureKind = "network"
	// FailureTimeout: an attempt exceeded its deadline; retried internally first.
	FailureTimeout FailureKind = "timeout"
)

// Transient reports whether a failure is worth another attempt.
func (k FailureKind) Transient() bool {
	return k == FailureNetwork || k == FailureTimeout
}

// ValidationError is a user-input defect caught before any network call.
// Always recoverable by editing the request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GeocodingError annotates a failed address resolution with which
// waypoint failed (e.g. "start", "end", "stop 2").
type GeocodingError struct {
	Waypoint string
	Address  string
	Kind     FailureKind
	Err      error
}

func (e *GeocodingError) Error() string {
	return fmt.Sprintf("geocode %s %q: %s", e.Waypoint, e.Address, e.Kind)
}

func (e *GeocodingError) Unwrap() error { return e.Err }

// RoutingError is a failed leg computation across the whole waypoint sequence.
type RoutingError struct {
	Kind FailureKind
	Err  error
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("route trip: %s", e.Kind)
}

func (e *RoutingError) Unwrap() error { return e.Err }

// ContractError signals a broken caller contract (e.g. leg count not
// matching stop count entering the calculator). It indicates an upstream
// bug and must never be swallowed or surfaced as user text.
type ContractError struct {
	Message string
}

func (e *ContractError) Error() string { return "contract violation: " + e.Message }
