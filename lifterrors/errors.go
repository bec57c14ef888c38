// Package lifterrors defines the error taxonomy for schemalift.
//
// Sentinel errors support errors.Is checks across package boundaries, and
// structured error types carry the details callers need for diagnostics:
//
//	result, err := lifter.Lift("api.yaml")
//	if errors.Is(err, lifterrors.ErrNameCollision) {
//	    var collision *lifterrors.NameCollisionError
//	    if errors.As(err, &collision) {
//	        log.Fatalf("name %s is taken: %s", collision.Name, collision)
//	    }
//	}
package lifterrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNameCollision indicates a synthesized name is already bound to a
	// schema with a different shape. The document cannot be lifted without
	// producing an ambiguous registry, so this is fatal.
	ErrNameCollision = errors.New("schema name collision")

	// ErrLedgerInconsistency indicates the usage ledger disagrees with the
	// registry. This is an internal defect, never a property of the input.
	ErrLedgerInconsistency = errors.New("usage ledger inconsistency")

	// ErrConfig indicates invalid lifter configuration.
	ErrConfig = errors.New("invalid configuration")
)

// NameCollisionError reports a fatal clash between a name the lifter wants
// to bind and an existing binding with a different shape.
type NameCollisionError struct {
	// Name is the contested component name.
	Name string
	// Existing describes the current holder of the name: the usage context
	// it was registered under, or "components" for a pre-existing component.
	Existing string
	// Incoming describes the usage context that attempted the binding.
	Incoming string
}

// Error implements the error interface.
func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("schema name collision: %q is bound at %s but a different shape at %s requires the same name",
		e.Name, e.Existing, e.Incoming)
}

// Unwrap makes errors.Is(err, ErrNameCollision) work.
func (e *NameCollisionError) Unwrap() error { return ErrNameCollision }

// LedgerError reports a usage ledger entry that contradicts the registry.
type LedgerError struct {
	// Name is the component name the inconsistent entry refers to.
	Name string
	// Reason describes the contradiction.
	Reason string
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	return fmt.Sprintf("usage ledger inconsistency for %q: %s", e.Name, e.Reason)
}

// Unwrap makes errors.Is(err, ErrLedgerInconsistency) work.
func (e *LedgerError) Unwrap() error { return ErrLedgerInconsistency }

// ConfigError reports invalid lifter configuration.
type ConfigError struct {
	// Reason describes what is wrong with the configuration.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Unwrap makes errors.Is(err, ErrConfig) work.
func (e *ConfigError) Unwrap() error { return ErrConfig }
