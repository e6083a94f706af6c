package backendtest

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
)

// Instance is the fake backend.Instance created by Backend.CreateInstance.
type Instance struct {
	backend *Backend
	handle  uint64
	info    backend.InstanceCreateInfo

	messengers map[backend.Messenger]backend.DebugUtilsMessengerCallback
	surfaces   map[backend.Surface]any

	violations []string
}

// Info returns the create info the instance was built from.
func (i *Instance) Info() backend.InstanceCreateInfo {
	return i.info
}

// LogicalDevices returns every logical device created from the instance.
func (i *Instance) LogicalDevices() []*LogicalDevice {
	return slices.Clone(i.backend.logical)
}

// Violations lists destruction-order problems, such as the instance being
// destroyed while children are alive.
func (i *Instance) Violations() []string {
	return slices.Clone(i.violations)
}

func (i *Instance) emit(msg Message) int {
	n := 0
	for _, cb := range i.messengers {
		cb(msg.Severity, msg.Type, msg.Text)
		n++
	}
	return n
}

func (i *Instance) physical(device backend.PhysicalDevice) (*Device, error) {
	idx := int(device) - 1
	if idx < 0 || idx >= len(i.backend.Devices) {
		return nil, errors.Newf("unknown physical device %#x", uint64(device))
	}
	return &i.backend.Devices[idx], nil
}

func (i *Instance) ProcAddr(name string) any {
	if i.backend.HideProcs || !slices.Contains(i.info.EnabledExtensionNames, backend.DebugUtilsExtensionName) {
		return nil
	}
	switch name {
	case backend.CreateDebugUtilsMessengerProc:
		return backend.CreateDebugUtilsMessengerFunc(i.createMessenger)
	case backend.DestroyDebugUtilsMessengerProc:
		return backend.DestroyDebugUtilsMessengerFunc(i.destroyMessenger)
	}
	return nil
}

func (i *Instance) createMessenger(info backend.DebugUtilsMessengerCreateInfo) (backend.Messenger, backend.Result, error) {
	if res, err := i.backend.record(CallCreateMessenger); err != nil {
		return 0, res, err
	}
	m := backend.Messenger(i.backend.create(KindMessenger))
	i.messengers[m] = info.UserCallback
	return m, backend.Success, nil
}

func (i *Instance) destroyMessenger(m backend.Messenger) {
	i.backend.destroy(uint64(m))
	delete(i.messengers, m)
}

func (i *Instance) EnumeratePhysicalDevices() ([]backend.PhysicalDevice, backend.Result, error) {
	if res, err := i.backend.record(CallEnumerateDevices); err != nil {
		return nil, res, err
	}
	devices := make([]backend.PhysicalDevice, len(i.backend.Devices))
	for idx := range i.backend.Devices {
		devices[idx] = backend.PhysicalDevice(idx + 1)
	}
	return devices, backend.Success, nil
}

func (i *Instance) GetPhysicalDeviceProperties(device backend.PhysicalDevice) (backend.PhysicalDeviceProperties, error) {
	if _, err := i.backend.record(CallDeviceProperties); err != nil {
		return backend.PhysicalDeviceProperties{}, err
	}
	d, err := i.physical(device)
	if err != nil {
		return backend.PhysicalDeviceProperties{}, err
	}
	return backend.PhysicalDeviceProperties{DeviceName: d.Name}, nil
}

func (i *Instance) GetPhysicalDeviceQueueFamilyProperties(device backend.PhysicalDevice) []backend.QueueFamilyProperties {
	d, err := i.physical(device)
	if err != nil {
		return nil
	}
	return slices.Clone(d.Families)
}

func (i *Instance) EnumerateDeviceExtensionProperties(device backend.PhysicalDevice) ([]string, backend.Result, error) {
	if res, err := i.backend.record(CallDeviceExtensions); err != nil {
		return nil, res, err
	}
	d, err := i.physical(device)
	if err != nil {
		return nil, backend.ErrorInitializationFailed, err
	}
	return slices.Clone(d.Extensions), backend.Success, nil
}

func (i *Instance) GetPhysicalDeviceSurfaceSupport(surface backend.Surface, device backend.PhysicalDevice, queueFamilyIndex int) (bool, backend.Result, error) {
	if res, err := i.backend.record(CallSurfaceSupport); err != nil {
		return false, res, err
	}
	if _, ok := i.surfaces[surface]; !ok {
		return false, backend.ErrorSurfaceLost, errors.Newf("unknown surface %#x", uint64(surface))
	}
	d, err := i.physical(device)
	if err != nil {
		return false, backend.ErrorInitializationFailed, err
	}
	return slices.Contains(d.Present, queueFamilyIndex), backend.Success, nil
}

func (i *Instance) CreateSurface(window any) (backend.Surface, backend.Result, error) {
	if res, err := i.backend.record(CallCreateSurface); err != nil {
		return 0, res, err
	}
	if window == nil {
		return 0, backend.ErrorInitializationFailed, errors.New("nil window")
	}
	for _, w := range i.surfaces {
		if w == window {
			return 0, backend.ErrorNativeWindowInUse, errors.New("window already has a surface")
		}
	}
	s := backend.Surface(i.backend.create(KindSurface))
	i.surfaces[s] = window
	return s, backend.Success, nil
}

func (i *Instance) DestroySurface(surface backend.Surface) {
	for _, d := range i.backend.logical {
		if !d.destroyed {
			i.violations = append(i.violations, "surface destroyed before its logical device")
			break
		}
	}
	i.backend.destroy(uint64(surface))
	delete(i.surfaces, surface)
}

func (i *Instance) CreateDevice(device backend.PhysicalDevice, info backend.DeviceCreateInfo) (backend.Device, backend.Result, error) {
	if res, err := i.backend.record(CallCreateDevice); err != nil {
		return nil, res, err
	}
	d, err := i.physical(device)
	if err != nil {
		return nil, backend.ErrorInitializationFailed, err
	}

	seen := make(map[int]bool)
	for _, q := range info.QueueCreateInfos {
		if q.QueueFamilyIndex < 0 || q.QueueFamilyIndex >= len(d.Families) {
			return nil, backend.ErrorInitializationFailed, errors.Newf("queue family %d out of range", q.QueueFamilyIndex)
		}
		if seen[q.QueueFamilyIndex] {
			return nil, backend.ErrorInitializationFailed, errors.Newf("queue family %d requested twice", q.QueueFamilyIndex)
		}
		seen[q.QueueFamilyIndex] = true
	}
	for _, ext := range info.EnabledExtensionNames {
		if !slices.Contains(d.Extensions, ext) {
			return nil, backend.ErrorExtensionNotPresent, errors.Newf("device extension %s not present", ext)
		}
	}

	logical := &LogicalDevice{
		backend:  i.backend,
		handle:   i.backend.create(KindDevice),
		Physical: device,
		Info:     info,
	}
	i.backend.logical = append(i.backend.logical, logical)
	return logical, backend.Success, nil
}

func (i *Instance) DestroyInstance() {
	if n := len(i.backend.live) - 1; n > 0 {
		i.violations = append(i.violations, fmt.Sprintf("instance destroyed with %d live children", n))
	}
	i.backend.destroy(i.handle)
}

var _ backend.Instance = (*Instance)(nil)

// LogicalDevice is the fake backend.Device created by Instance.CreateDevice.
type LogicalDevice struct {
	backend   *Backend
	handle    uint64
	destroyed bool

	Physical backend.PhysicalDevice
	Info     backend.DeviceCreateInfo
}

// GetQueue returns a queue handle derived from the device and family, or the
// null queue when the family was not requested at creation.
func (d *LogicalDevice) GetQueue(queueFamilyIndex, queueIndex int) backend.Queue {
	for _, q := range d.Info.QueueCreateInfos {
		if q.QueueFamilyIndex == queueFamilyIndex && queueIndex < len(q.QueuePriorities) {
			return backend.Queue(d.handle<<16 | uint64(queueFamilyIndex)<<8 | uint64(queueIndex+1))
		}
	}
	return 0
}

func (d *LogicalDevice) DestroyDevice() {
	d.backend.destroy(d.handle)
	d.destroyed = true
}

var _ backend.Device = (*LogicalDevice)(nil)
