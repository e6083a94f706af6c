package bootstrap_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/bootstrap"
	"github.com/vkngwrapper/bootstrap/backend"
	"github.com/vkngwrapper/bootstrap/backend/backendtest"
	"github.com/vkngwrapper/bootstrap/backend/mocks"
	"github.com/vkngwrapper/bootstrap/window/windowtest"
	"go.uber.org/mock/gomock"
)

// surfaceInstance creates an instance on b and a surface for a fake window.
func surfaceInstance(t *testing.T, b *backendtest.Backend) (backend.Instance, backend.Surface) {
	t.Helper()
	inst, _, err := b.CreateInstance(backend.InstanceCreateInfo{
		EnabledExtensionNames: []string{backend.SurfaceExtensionName},
	})
	require.NoError(t, err)

	win, err := windowtest.New().CreateWindow(800, 600, "test")
	require.NoError(t, err)

	surface, err := bootstrap.CreateSurface(inst, win)
	require.NoError(t, err)
	return inst, surface
}

func graphicsWithoutPresent(name string) backendtest.Device {
	return backendtest.Device{
		Name:     name,
		Families: []backend.QueueFamilyProperties{{QueueFlags: backend.QueueGraphics, QueueCount: 1}},
	}
}

func TestPickPhysicalDevice_SkipsDevicesWithoutGraphics(t *testing.T) {
	b := backendtest.New(backendtest.ComputeOnly("compute"), backendtest.GraphicsAndPresent("gpu"))
	inst := debugInstance(t, b)

	device, indices, err := bootstrap.PickPhysicalDevice(inst, 0)
	require.NoError(t, err)
	require.Equal(t, backend.PhysicalDevice(2), device)
	require.NotNil(t, indices.GraphicsFamily)
	require.Equal(t, 0, *indices.GraphicsFamily)
	require.Nil(t, indices.PresentFamily)
}

func TestPickPhysicalDevice_FirstMatchWins(t *testing.T) {
	b := backendtest.New(backendtest.SplitFamilies("first"), backendtest.GraphicsAndPresent("second"))
	inst, surface := surfaceInstance(t, b)

	device, indices, err := bootstrap.PickPhysicalDevice(inst, surface)
	require.NoError(t, err)
	require.Equal(t, backend.PhysicalDevice(1), device)
	require.Equal(t, 0, *indices.GraphicsFamily)
	require.Equal(t, 1, *indices.PresentFamily)
}

func TestPickPhysicalDevice_OnlyComputeDevices(t *testing.T) {
	b := backendtest.New(backendtest.ComputeOnly("a"), backendtest.ComputeOnly("b"))
	inst := debugInstance(t, b)

	device, _, err := bootstrap.PickPhysicalDevice(inst, 0)
	require.False(t, device.Initialized())
	require.True(t, errors.Is(err, bootstrap.ErrNoSuitableDevice))
	require.ErrorContains(t, err, "no suitable device")
}

func TestPickPhysicalDevice_ZeroQueueGraphicsFamily(t *testing.T) {
	b := backendtest.New(backendtest.Device{
		Name:     "empty family",
		Families: []backend.QueueFamilyProperties{{QueueFlags: backend.QueueGraphics, QueueCount: 0}},
		Present:  []int{0},
	})
	inst := debugInstance(t, b)

	_, _, err := bootstrap.PickPhysicalDevice(inst, 0)
	require.True(t, errors.Is(err, bootstrap.ErrNoSuitableDevice))
}

func TestPickPhysicalDevice_NoDevices(t *testing.T) {
	b := backendtest.New()
	inst := debugInstance(t, b)

	_, _, err := bootstrap.PickPhysicalDevice(inst, 0)
	require.True(t, errors.Is(err, bootstrap.ErrNoDevice))
	require.ErrorContains(t, err, "no devices")
	require.Equal(t, backend.Success, bootstrap.ResultOf(err))
}

func TestPickPhysicalDevice_EnumerationFailure(t *testing.T) {
	b := backendtest.New(backendtest.GraphicsAndPresent("gpu"))
	b.Fail = map[string]backend.Result{backendtest.CallEnumerateDevices: backend.ErrorInitializationFailed}
	inst := debugInstance(t, b)

	_, _, err := bootstrap.PickPhysicalDevice(inst, 0)
	require.True(t, errors.Is(err, bootstrap.ErrNoDevice))
	require.Equal(t, backend.ErrorInitializationFailed, bootstrap.ResultOf(err))
}

func TestPickPhysicalDevice_SurfaceRequiresPresent(t *testing.T) {
	b := backendtest.New(graphicsWithoutPresent("headless"), backendtest.GraphicsAndPresent("display"))
	inst, surface := surfaceInstance(t, b)

	device, indices, err := bootstrap.PickPhysicalDevice(inst, surface)
	require.NoError(t, err)
	require.Equal(t, backend.PhysicalDevice(2), device)
	require.True(t, indices.IsComplete())
}

func TestPickPhysicalDevice_NoPresentCapableDevice(t *testing.T) {
	b := backendtest.New(graphicsWithoutPresent("headless"))
	inst, surface := surfaceInstance(t, b)

	_, _, err := bootstrap.PickPhysicalDevice(inst, surface)
	require.True(t, errors.Is(err, bootstrap.ErrNoSuitableDevice))

	// Without a surface the same device is acceptable.
	device, _, err := bootstrap.PickPhysicalDevice(inst, 0)
	require.NoError(t, err)
	require.Equal(t, backend.PhysicalDevice(1), device)
}

func TestPickPhysicalDevice_SkipsDeviceWhoseSurfaceQueryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	inst := mocks.NewMockInstance(ctrl)
	surface := backend.Surface(0x20)
	graphics := []backend.QueueFamilyProperties{{QueueFlags: backend.QueueGraphics, QueueCount: 1}}

	inst.EXPECT().EnumeratePhysicalDevices().Return([]backend.PhysicalDevice{1, 2}, backend.Success, nil)
	inst.EXPECT().GetPhysicalDeviceQueueFamilyProperties(backend.PhysicalDevice(1)).Return(graphics)
	inst.EXPECT().GetPhysicalDeviceSurfaceSupport(surface, backend.PhysicalDevice(1), 0).Return(false, backend.ErrorSurfaceLost, errors.New("surface lost"))
	inst.EXPECT().GetPhysicalDeviceQueueFamilyProperties(backend.PhysicalDevice(2)).Return(graphics)
	inst.EXPECT().GetPhysicalDeviceSurfaceSupport(surface, backend.PhysicalDevice(2), 0).Return(true, backend.Success, nil)

	device, indices, err := bootstrap.PickPhysicalDevice(inst, surface)
	require.NoError(t, err)
	require.Equal(t, backend.PhysicalDevice(2), device)
	require.True(t, indices.IsComplete())
}

func TestPickPhysicalDevice_ReportsQueryFailureWhenNothingQualifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	inst := mocks.NewMockInstance(ctrl)
	surface := backend.Surface(0x20)

	inst.EXPECT().EnumeratePhysicalDevices().Return([]backend.PhysicalDevice{1, 2}, backend.Success, nil)
	inst.EXPECT().GetPhysicalDeviceQueueFamilyProperties(backend.PhysicalDevice(1)).
		Return([]backend.QueueFamilyProperties{{QueueFlags: backend.QueueGraphics, QueueCount: 1}})
	inst.EXPECT().GetPhysicalDeviceSurfaceSupport(surface, backend.PhysicalDevice(1), 0).Return(false, backend.ErrorSurfaceLost, errors.New("surface lost"))
	inst.EXPECT().GetPhysicalDeviceQueueFamilyProperties(backend.PhysicalDevice(2)).
		Return([]backend.QueueFamilyProperties{{QueueFlags: backend.QueueCompute, QueueCount: 1}})
	inst.EXPECT().GetPhysicalDeviceSurfaceSupport(surface, backend.PhysicalDevice(2), 0).Return(false, backend.Success, nil)

	_, _, err := bootstrap.PickPhysicalDevice(inst, surface)
	require.True(t, errors.Is(err, bootstrap.ErrNoSuitableDevice))
	require.Equal(t, backend.ErrorSurfaceLost, bootstrap.ResultOf(err))
	require.ErrorContains(t, err, "none of 2 devices qualified")
}
