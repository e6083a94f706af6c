package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
)

// QueueFamilyIndices are the queue families chosen on a physical device.
// Nil means no family was found for that role.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

// IsComplete reports whether both roles have a family.
func (i QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// FindQueueFamilies scans the families of device in order. The graphics
// family is the first with queues and the graphics flag; the present family
// is the first that can present to surface. One family may fill both roles.
// With a null surface PresentFamily stays nil.
func FindQueueFamilies(inst backend.Instance, device backend.PhysicalDevice, surface backend.Surface) (QueueFamilyIndices, error) {
	indices := QueueFamilyIndices{}
	queueFamilies := inst.GetPhysicalDeviceQueueFamilyProperties(device)

	for queueFamilyIdx, queueFamily := range queueFamilies {
		if indices.GraphicsFamily == nil && queueFamily.QueueCount > 0 && queueFamily.QueueFlags&backend.QueueGraphics != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		if surface.Initialized() && indices.PresentFamily == nil {
			supported, res, err := inst.GetPhysicalDeviceSurfaceSupport(surface, device, queueFamilyIdx)
			if err != nil {
				return indices, &resultError{cause: errors.Wrapf(err, "surface support of queue family %d", queueFamilyIdx), result: res}
			}

			if supported {
				indices.PresentFamily = new(int)
				*indices.PresentFamily = queueFamilyIdx
			}
		}

		if indices.IsComplete() || (!surface.Initialized() && indices.GraphicsFamily != nil) {
			break
		}
	}

	return indices, nil
}
