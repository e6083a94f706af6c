package bootstrap

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/bootstrap/backend"
)

// ResolveProc looks up an instance-level entry point and asserts it to F.
// A missing or mistyped entry point is ErrExtensionUnavailable.
func ResolveProc[F any](inst backend.Instance, name string) (F, error) {
	var zero F

	proc := inst.ProcAddr(name)
	if proc == nil {
		return zero, failf(ErrExtensionUnavailable, backend.ErrorExtensionNotPresent, "%s not loaded", name)
	}
	if v := reflect.ValueOf(proc); v.Kind() == reflect.Func && v.IsNil() {
		return zero, failf(ErrExtensionUnavailable, backend.ErrorExtensionNotPresent, "%s resolved to nil", name)
	}

	f, ok := proc.(F)
	if !ok {
		return zero, failf(ErrExtensionUnavailable, backend.ErrorExtensionNotPresent, "%s is %T, not %T", name, proc, zero)
	}
	return f, nil
}

// Diagnostics is a registered debug messenger. It must be released with
// TeardownDiagnostics before its instance is destroyed.
type Diagnostics struct {
	Messenger backend.Messenger
}

// SetupDiagnostics registers a debug messenger that forwards error and
// warning messages of every category to sink. It does nothing and returns
// nil when enabled is false. A nil sink logs to the standard logger.
// A missing entry point is ErrExtensionUnavailable; a failed registration is
// ErrDiagnosticsCreation.
func SetupDiagnostics(inst backend.Instance, enabled bool, sink Sink) (*Diagnostics, error) {
	if !enabled {
		return nil, nil
	}
	if sink == nil {
		sink = LogSink(logrus.StandardLogger())
	}

	create, err := ResolveProc[backend.CreateDebugUtilsMessengerFunc](inst, backend.CreateDebugUtilsMessengerProc)
	if err != nil {
		return nil, err
	}

	messenger, res, err := create(messengerCreateInfo(sink))
	if err != nil {
		return nil, fail(ErrDiagnosticsCreation, res, err)
	}
	if res.IsError() || !messenger.Initialized() {
		return nil, failf(ErrDiagnosticsCreation, res, "%s returned %s", backend.CreateDebugUtilsMessengerProc, res)
	}
	return &Diagnostics{Messenger: messenger}, nil
}

// TeardownDiagnostics unregisters the messenger of d. It is a no-op for nil
// and for an already released d.
func TeardownDiagnostics(inst backend.Instance, d *Diagnostics) {
	if d == nil || !d.Messenger.Initialized() {
		return
	}

	destroy, err := ResolveProc[backend.DestroyDebugUtilsMessengerFunc](inst, backend.DestroyDebugUtilsMessengerProc)
	if err != nil {
		logrus.WithError(errors.Wrap(err, "teardown diagnostics")).Warn("leaking debug messenger")
		d.Messenger = 0
		return
	}
	destroy(d.Messenger)
	d.Messenger = 0
}

func messengerCreateInfo(sink Sink) backend.DebugUtilsMessengerCreateInfo {
	return backend.DebugUtilsMessengerCreateInfo{
		MessageSeverity: backend.SeverityError | backend.SeverityWarning,
		MessageType:     backend.TypeGeneral | backend.TypeValidation | backend.TypePerformance,
		UserCallback: func(severity backend.MessageSeverity, msgType backend.MessageType, message string) bool {
			deliver(sink, severity, msgType, message)
			return false
		},
	}
}
