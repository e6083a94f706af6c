package bootstrap_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/bootstrap"
	"github.com/vkngwrapper/bootstrap/backend"
	"github.com/vkngwrapper/bootstrap/backend/backendtest"
	"github.com/vkngwrapper/bootstrap/backend/mocks"
	"go.uber.org/mock/gomock"
)

func debugInstance(t *testing.T, b *backendtest.Backend) backend.Instance {
	t.Helper()
	inst, _, err := b.CreateInstance(backend.InstanceCreateInfo{
		EnabledExtensionNames: []string{backend.DebugUtilsExtensionName},
	})
	require.NoError(t, err)
	return inst
}

type recordingSink struct {
	messages []string
}

func (s *recordingSink) Message(msg string) {
	s.messages = append(s.messages, msg)
}

func TestSetupDiagnostics_DisabledIsNoop(t *testing.T) {
	b := backendtest.New()
	inst := debugInstance(t, b)
	sink := &recordingSink{}

	d, err := bootstrap.SetupDiagnostics(inst, false, sink)
	require.NoError(t, err)
	require.Nil(t, d)
	require.False(t, b.Called(backendtest.CallCreateMessenger))

	require.Zero(t, b.Emit(backendtest.Message{Severity: backend.SeverityError, Type: backend.TypeValidation, Text: "dropped"}))
	require.Empty(t, sink.messages)
}

func TestSetupDiagnostics_ForwardsToSink(t *testing.T) {
	b := backendtest.New()
	inst := debugInstance(t, b)
	sink := &recordingSink{}

	d, err := bootstrap.SetupDiagnostics(inst, true, sink)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.True(t, d.Messenger.Initialized())

	require.Equal(t, 1, b.Emit(backendtest.Message{Severity: backend.SeverityError, Type: backend.TypeValidation, Text: "vkCreateDevice: invalid queue family"}))
	require.Equal(t, []string{"vkCreateDevice: invalid queue family"}, sink.messages)

	bootstrap.TeardownDiagnostics(inst, d)
	require.Equal(t, []string{backendtest.KindMessenger}, b.Destroyed())
}

func TestSetupDiagnostics_CallbackNeverAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	inst := mocks.NewMockInstance(ctrl)

	var info backend.DebugUtilsMessengerCreateInfo
	create := backend.CreateDebugUtilsMessengerFunc(func(i backend.DebugUtilsMessengerCreateInfo) (backend.Messenger, backend.Result, error) {
		info = i
		return 7, backend.Success, nil
	})
	inst.EXPECT().ProcAddr(backend.CreateDebugUtilsMessengerProc).Return(create)

	d, err := bootstrap.SetupDiagnostics(inst, true, bootstrap.SinkFunc(func(string) {}))
	require.NoError(t, err)
	require.Equal(t, backend.Messenger(7), d.Messenger)

	require.Equal(t, backend.SeverityError|backend.SeverityWarning, info.MessageSeverity)
	require.Equal(t, backend.TypeGeneral|backend.TypeValidation|backend.TypePerformance, info.MessageType)
	for _, severity := range []backend.MessageSeverity{backend.SeverityError, backend.SeverityWarning} {
		require.False(t, info.UserCallback(severity, backend.TypeGeneral, "message"))
	}
}

func TestSetupDiagnostics_MissingEntryPoint(t *testing.T) {
	b := backendtest.New()
	b.HideProcs = true
	inst := debugInstance(t, b)

	d, err := bootstrap.SetupDiagnostics(inst, true, &recordingSink{})
	require.Nil(t, d)
	require.True(t, errors.Is(err, bootstrap.ErrExtensionUnavailable))
	require.Equal(t, backend.ErrorExtensionNotPresent, bootstrap.ResultOf(err))
	require.Equal(t, []string{backendtest.KindInstance}, b.Live())
}

func TestSetupDiagnostics_ExtensionNotEnabled(t *testing.T) {
	b := backendtest.New()
	inst, _, err := b.CreateInstance(backend.InstanceCreateInfo{})
	require.NoError(t, err)

	_, err = bootstrap.SetupDiagnostics(inst, true, &recordingSink{})
	require.True(t, errors.Is(err, bootstrap.ErrExtensionUnavailable))
}

func TestSetupDiagnostics_CreateFailure(t *testing.T) {
	b := backendtest.New()
	b.Fail = map[string]backend.Result{backendtest.CallCreateMessenger: backend.ErrorOutOfHostMemory}
	inst := debugInstance(t, b)

	d, err := bootstrap.SetupDiagnostics(inst, true, &recordingSink{})
	require.Nil(t, d)
	require.True(t, errors.Is(err, bootstrap.ErrDiagnosticsCreation))
	require.False(t, errors.Is(err, bootstrap.ErrExtensionUnavailable))
	require.ErrorContains(t, err, "debug messenger creation failed")
	require.Equal(t, backend.ErrorOutOfHostMemory, bootstrap.ResultOf(err))
}

func TestTeardownDiagnostics_Idempotent(t *testing.T) {
	b := backendtest.New()
	inst := debugInstance(t, b)

	d, err := bootstrap.SetupDiagnostics(inst, true, &recordingSink{})
	require.NoError(t, err)

	bootstrap.TeardownDiagnostics(inst, d)
	bootstrap.TeardownDiagnostics(inst, d)
	bootstrap.TeardownDiagnostics(inst, nil)

	require.Equal(t, []string{backendtest.KindMessenger}, b.Destroyed())
	require.Equal(t, []string{backendtest.KindInstance}, b.Live())
}

func TestResolveProc(t *testing.T) {
	testCases := map[string]struct {
		proc    any
		wantErr bool
	}{
		"resolved":   {proc: backend.DestroyDebugUtilsMessengerFunc(func(backend.Messenger) {}), wantErr: false},
		"missing":    {proc: nil, wantErr: true},
		"typed nil":  {proc: backend.DestroyDebugUtilsMessengerFunc(nil), wantErr: true},
		"wrong type": {proc: func() {}, wantErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inst := mocks.NewMockInstance(ctrl)
			inst.EXPECT().ProcAddr(backend.DestroyDebugUtilsMessengerProc).Return(tc.proc)

			f, err := bootstrap.ResolveProc[backend.DestroyDebugUtilsMessengerFunc](inst, backend.DestroyDebugUtilsMessengerProc)
			if tc.wantErr {
				require.True(t, errors.Is(err, bootstrap.ErrExtensionUnavailable))
				require.Nil(t, f)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, f)
		})
	}
}

func TestLogSink(t *testing.T) {
	logger, hook := test.NewNullLogger()
	sink := bootstrap.LogSink(logger)

	sink.Message("plain message")
	require.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	require.Equal(t, "plain message", hook.LastEntry().Message)
	require.Equal(t, "validation", hook.LastEntry().Data["source"])
}

func TestLogSink_SeverityFromMessenger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	b := backendtest.New()
	inst := debugInstance(t, b)

	d, err := bootstrap.SetupDiagnostics(inst, true, bootstrap.LogSink(logger))
	require.NoError(t, err)
	defer bootstrap.TeardownDiagnostics(inst, d)

	b.Emit(backendtest.Message{Severity: backend.SeverityWarning, Type: backend.TypePerformance, Text: "slow path"})
	entry := hook.LastEntry()
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "Warning", entry.Data["severity"])
	require.Equal(t, "Performance", entry.Data["type"])

	b.Emit(backendtest.Message{Severity: backend.SeverityError, Type: backend.TypeValidation, Text: "bad handle"})
	entry = hook.LastEntry()
	require.Equal(t, logrus.ErrorLevel, entry.Level)
	require.Equal(t, "bad handle", entry.Message)
}

func TestSetupDiagnostics_CreateReturnsNullMessenger(t *testing.T) {
	ctrl := gomock.NewController(t)
	inst := mocks.NewMockInstance(ctrl)
	create := backend.CreateDebugUtilsMessengerFunc(func(backend.DebugUtilsMessengerCreateInfo) (backend.Messenger, backend.Result, error) {
		return 0, backend.ErrorTooManyObjects, nil
	})
	inst.EXPECT().ProcAddr(backend.CreateDebugUtilsMessengerProc).Return(create)

	d, err := bootstrap.SetupDiagnostics(inst, true, &recordingSink{})
	require.Nil(t, d)
	require.True(t, errors.Is(err, bootstrap.ErrDiagnosticsCreation))
	require.Equal(t, backend.ErrorTooManyObjects, bootstrap.ResultOf(err))
}
