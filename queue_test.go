package bootstrap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/bootstrap"
	"github.com/vkngwrapper/bootstrap/backend"
	"github.com/vkngwrapper/bootstrap/backend/backendtest"
)

func TestFindQueueFamilies_NullSurfaceNeverSetsPresent(t *testing.T) {
	b := backendtest.New(backendtest.GraphicsAndPresent("gpu"))
	inst := debugInstance(t, b)

	indices, err := bootstrap.FindQueueFamilies(inst, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, *indices.GraphicsFamily)
	require.Nil(t, indices.PresentFamily)
	require.False(t, indices.IsComplete())
	require.False(t, b.Called(backendtest.CallSurfaceSupport))
}

func TestFindQueueFamilies_SharedFamily(t *testing.T) {
	b := backendtest.New(backendtest.GraphicsAndPresent("gpu"))
	inst, surface := surfaceInstance(t, b)

	indices, err := bootstrap.FindQueueFamilies(inst, 1, surface)
	require.NoError(t, err)
	require.True(t, indices.IsComplete())
	require.Equal(t, *indices.GraphicsFamily, *indices.PresentFamily)
}

func TestFindQueueFamilies_SplitFamilies(t *testing.T) {
	b := backendtest.New(backendtest.SplitFamilies("gpu"))
	inst, surface := surfaceInstance(t, b)

	indices, err := bootstrap.FindQueueFamilies(inst, 1, surface)
	require.NoError(t, err)
	require.Equal(t, 0, *indices.GraphicsFamily)
	require.Equal(t, 1, *indices.PresentFamily)
}

func TestFindQueueFamilies_FirstGraphicsFamilyKept(t *testing.T) {
	b := backendtest.New(backendtest.Device{
		Name: "gpu",
		Families: []backend.QueueFamilyProperties{
			{QueueFlags: backend.QueueTransfer, QueueCount: 1},
			{QueueFlags: backend.QueueGraphics, QueueCount: 0},
			{QueueFlags: backend.QueueGraphics | backend.QueueCompute, QueueCount: 16},
			{QueueFlags: backend.QueueGraphics, QueueCount: 1},
		},
		Present: []int{3},
	})
	inst, surface := surfaceInstance(t, b)

	indices, err := bootstrap.FindQueueFamilies(inst, 1, surface)
	require.NoError(t, err)
	require.Equal(t, 2, *indices.GraphicsFamily)
	require.Equal(t, 3, *indices.PresentFamily)
}

func TestFindQueueFamilies_StopsOnceComplete(t *testing.T) {
	b := backendtest.New(backendtest.Device{
		Name: "gpu",
		Families: []backend.QueueFamilyProperties{
			{QueueFlags: backend.QueueGraphics, QueueCount: 1},
			{QueueFlags: backend.QueueGraphics, QueueCount: 1},
			{QueueFlags: backend.QueueGraphics, QueueCount: 1},
		},
		Present: []int{0, 1, 2},
	})
	inst, surface := surfaceInstance(t, b)

	_, err := bootstrap.FindQueueFamilies(inst, 1, surface)
	require.NoError(t, err)

	queries := 0
	for _, call := range b.Calls() {
		if call == backendtest.CallSurfaceSupport {
			queries++
		}
	}
	require.Equal(t, 1, queries)
}

func TestFindQueueFamilies_SurfaceSupportFailure(t *testing.T) {
	b := backendtest.New(backendtest.GraphicsAndPresent("gpu"))
	inst, surface := surfaceInstance(t, b)
	b.Fail = map[string]backend.Result{backendtest.CallSurfaceSupport: backend.ErrorSurfaceLost}

	_, err := bootstrap.FindQueueFamilies(inst, 1, surface)
	require.Error(t, err)
	require.Equal(t, backend.ErrorSurfaceLost, bootstrap.ResultOf(err))
}
