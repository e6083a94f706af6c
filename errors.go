package bootstrap

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
)

// Stage failures. Errors returned by this package are marked with one of
// these, so errors.Is works across wrapping.
var (
	ErrUnsupportedLayer       = errors.New("layers unavailable")
	ErrInstanceCreation       = errors.New("instance creation failed")
	ErrExtensionUnavailable   = errors.New("extension not present")
	ErrDiagnosticsCreation    = errors.New("debug messenger creation failed")
	ErrNoDevice               = errors.New("no devices")
	ErrNoSuitableDevice       = errors.New("no suitable device")
	ErrSurfaceCreation        = errors.New("surface creation failed")
	ErrLogicalContextCreation = errors.New("logical device creation failed")
	ErrWindowCreation         = errors.New("window creation failed")

	// ErrInitialization matches every *InitializationError.
	ErrInitialization = errors.New("initialization failed")

	ErrAlreadyInitialized = errors.New("context already initialized")
)

// InitializationError is returned by Context.Init. It unwraps to the stage
// failure, so errors.Is(err, ErrNoDevice) and errors.Is(err,
// ErrInitialization) both hold for a device enumeration failure.
type InitializationError struct {
	Stage Stage

	// Status is the native status of the failing call, or backend.Success
	// when the failure was not reported by the backend.
	Status backend.Result

	// LastState is the last state reached before the failure. The context
	// itself is back to Uninitialized by the time the error is returned.
	LastState State

	err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("%s: %s stage after %s: %v", ErrInitialization, e.Stage, e.LastState, e.err)
}

func (e *InitializationError) Unwrap() error {
	return e.err
}

func (e *InitializationError) Is(target error) bool {
	return target == ErrInitialization
}

// resultError attaches the native status of a failed backend call.
type resultError struct {
	cause  error
	result backend.Result
}

func (e *resultError) Error() string { return e.cause.Error() }
func (e *resultError) Unwrap() error { return e.cause }

// ResultOf returns the native status carried by err, or backend.Success when
// there is none.
func ResultOf(err error) backend.Result {
	var re *resultError
	if errors.As(err, &re) {
		return re.result
	}
	return backend.Success
}

// fail builds a stage failure marked with sentinel. cause may be nil.
func fail(sentinel error, res backend.Result, cause error) error {
	var err error
	if cause == nil {
		err = errors.WithStackDepth(sentinel, 1)
	} else {
		err = errors.Mark(errors.WrapWithDepth(1, cause, sentinel.Error()), sentinel)
	}

	if res == backend.Success {
		return err
	}
	return &resultError{
		cause:  errors.WithDetailf(err, "status: %s", res),
		result: res,
	}
}

// failf is fail with a formatted cause.
func failf(sentinel error, res backend.Result, format string, args ...any) error {
	return fail(sentinel, res, errors.NewWithDepthf(1, format, args...))
}
