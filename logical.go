package bootstrap

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
)

// LogicalContext owns a logical device and the queues taken from it. The
// graphics and present queues are the same handle when both roles share a
// family.
type LogicalContext struct {
	Device        backend.Device
	GraphicsQueue backend.Queue
	PresentQueue  backend.Queue
}

// CreateLogicalContext creates a logical device with one queue, at priority
// 1.0, from each distinct family in indices. layers should be the layers
// enabled on the instance. VK_KHR_portability_subset is added to extensions
// when device advertises it.
func CreateLogicalContext(inst backend.Instance, device backend.PhysicalDevice, indices QueueFamilyIndices, layers []string, extensions []string) (*LogicalContext, error) {
	if !indices.IsComplete() {
		return nil, failf(ErrLogicalContextCreation, backend.Success, "incomplete queue families")
	}

	uniqueQueueFamilies := []int{*indices.GraphicsFamily}
	if uniqueQueueFamilies[0] != *indices.PresentFamily {
		uniqueQueueFamilies = append(uniqueQueueFamilies, *indices.PresentFamily)
	}

	var queueFamilyOptions []backend.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range uniqueQueueFamilies {
		queueFamilyOptions = append(queueFamilyOptions, backend.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	extensionNames := slices.Clone(extensions)

	available, res, err := inst.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		return nil, fail(ErrLogicalContextCreation, res, errors.Wrap(err, "enumerate device extensions"))
	}
	if slices.Contains(available, backend.PortabilitySubsetExtensionName) {
		extensionNames = appendUnique(extensionNames, backend.PortabilitySubsetExtensionName)
	}

	deviceDriver, res, err := inst.CreateDevice(device, backend.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledLayerNames:     slices.Clone(layers),
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return nil, fail(ErrLogicalContextCreation, res, err)
	}
	if res.IsError() || deviceDriver == nil {
		if deviceDriver != nil {
			deviceDriver.DestroyDevice()
		}
		return nil, failf(ErrLogicalContextCreation, res, "backend returned %s", res)
	}

	return &LogicalContext{
		Device:        deviceDriver,
		GraphicsQueue: deviceDriver.GetQueue(*indices.GraphicsFamily, 0),
		PresentQueue:  deviceDriver.GetQueue(*indices.PresentFamily, 0),
	}, nil
}

// Destroy releases the device. Calling it again does nothing.
func (c *LogicalContext) Destroy() {
	if c == nil || c.Device == nil {
		return
	}
	c.Device.DestroyDevice()
	c.Device = nil
	c.GraphicsQueue = 0
	c.PresentQueue = 0
}
