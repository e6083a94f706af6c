package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
)

// PickPhysicalDevice returns the first enumerated device that is suitable,
// along with its queue families. With a null surface a device is suitable
// when it has a graphics family; otherwise it needs both families.
func PickPhysicalDevice(inst backend.Instance, surface backend.Surface) (backend.PhysicalDevice, QueueFamilyIndices, error) {
	physicalDevices, res, err := inst.EnumeratePhysicalDevices()
	if err != nil {
		return 0, QueueFamilyIndices{}, fail(ErrNoDevice, res, err)
	}
	if len(physicalDevices) == 0 {
		return 0, QueueFamilyIndices{}, fail(ErrNoDevice, res, nil)
	}

	// A device whose queue families cannot be resolved is skipped. Its error is
	// only reported when no other device qualifies.
	var firstErr error
	for _, device := range physicalDevices {
		indices, err := FindQueueFamilies(inst, device, surface)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if isSuitable(indices, surface) {
			return device, indices, nil
		}
	}

	if firstErr != nil {
		return 0, QueueFamilyIndices{}, fail(ErrNoSuitableDevice, ResultOf(firstErr), errors.Wrapf(firstErr, "none of %d devices qualified", len(physicalDevices)))
	}
	return 0, QueueFamilyIndices{}, failf(ErrNoSuitableDevice, backend.Success, "none of %d devices qualified", len(physicalDevices))
}

func isSuitable(indices QueueFamilyIndices, surface backend.Surface) bool {
	if !surface.Initialized() {
		return indices.GraphicsFamily != nil
	}
	return indices.IsComplete()
}

// deviceName is best effort and only used for logging.
func deviceName(inst backend.Instance, device backend.PhysicalDevice) string {
	props, err := inst.GetPhysicalDeviceProperties(device)
	if err != nil || props.DeviceName == "" {
		return "unknown"
	}
	return props.DeviceName
}
