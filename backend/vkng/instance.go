package vkng

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/bootstrap/backend"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// Instance wraps a vkngwrapper instance driver and the extension drivers
// created from it.
type Instance struct {
	driver  core1_0.CoreInstanceDriver
	enabled []string

	debugDriver   ext_debug_utils.ExtensionDriver
	surfaceDriver khr_surface.ExtensionDriver

	physicalDevices []core1_0.PhysicalDevice
	surfaces        map[backend.Surface]khr_surface.Surface
	messengers      map[backend.Messenger]ext_debug_utils.DebugUtilsMessenger
	nextHandle      uint64
}

func newInstance(driver core1_0.CoreInstanceDriver, enabled []string) *Instance {
	inst := &Instance{
		driver:     driver,
		enabled:    slices.Clone(enabled),
		surfaces:   make(map[backend.Surface]khr_surface.Surface),
		messengers: make(map[backend.Messenger]ext_debug_utils.DebugUtilsMessenger),
	}
	if slices.Contains(enabled, backend.SurfaceExtensionName) {
		inst.surfaceDriver = khr_surface.CreateExtensionDriverFromCoreDriver(driver)
	}
	if slices.Contains(enabled, backend.DebugUtilsExtensionName) {
		inst.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(driver)
	}
	return inst
}

func (i *Instance) handle() uint64 {
	i.nextHandle++
	return i.nextHandle
}

func (i *Instance) physical(device backend.PhysicalDevice) (core1_0.PhysicalDevice, error) {
	idx := int(device) - 1
	if idx < 0 || idx >= len(i.physicalDevices) {
		return core1_0.PhysicalDevice{}, errors.Newf("vkng: unknown physical device %d", uint64(device))
	}
	return i.physicalDevices[idx], nil
}

func (i *Instance) ProcAddr(name string) any {
	if i.debugDriver == nil {
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
	messenger, res, err := i.debugDriver.CreateDebugUtilsMessenger(nil, messengerOptions(info))
	if err != nil {
		return 0, backend.Result(res), err
	}
	h := backend.Messenger(i.handle())
	i.messengers[h] = messenger
	return h, backend.Result(res), nil
}

func (i *Instance) destroyMessenger(h backend.Messenger) {
	messenger, ok := i.messengers[h]
	if !ok {
		return
	}
	i.debugDriver.DestroyDebugUtilsMessenger(messenger, nil)
	delete(i.messengers, h)
}

func (i *Instance) EnumeratePhysicalDevices() ([]backend.PhysicalDevice, backend.Result, error) {
	devices, res, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, backend.Result(res), err
	}

	// Enumeration order is stable, so handles stay valid across calls.
	i.physicalDevices = devices
	handles := make([]backend.PhysicalDevice, len(devices))
	for idx := range devices {
		handles[idx] = backend.PhysicalDevice(idx + 1)
	}
	return handles, backend.Result(res), nil
}

func (i *Instance) GetPhysicalDeviceProperties(device backend.PhysicalDevice) (backend.PhysicalDeviceProperties, error) {
	pd, err := i.physical(device)
	if err != nil {
		return backend.PhysicalDeviceProperties{}, err
	}
	props, err := i.driver.GetPhysicalDeviceProperties(pd)
	if err != nil {
		return backend.PhysicalDeviceProperties{}, err
	}
	if props == nil {
		return backend.PhysicalDeviceProperties{}, errors.New("vkng: no physical device properties")
	}
	return backend.PhysicalDeviceProperties{DeviceName: props.DeviceName}, nil
}

func (i *Instance) GetPhysicalDeviceQueueFamilyProperties(device backend.PhysicalDevice) []backend.QueueFamilyProperties {
	pd, err := i.physical(device)
	if err != nil {
		return nil
	}

	families := i.driver.GetPhysicalDeviceQueueFamilyProperties(pd)
	out := make([]backend.QueueFamilyProperties, 0, len(families))
	for _, family := range families {
		if family == nil {
			// Keep indices aligned with the native family order.
			out = append(out, backend.QueueFamilyProperties{})
			continue
		}
		out = append(out, backend.QueueFamilyProperties{
			QueueFlags: backend.QueueFlags(family.QueueFlags),
			QueueCount: int(family.QueueCount),
		})
	}
	return out
}

func (i *Instance) EnumerateDeviceExtensionProperties(device backend.PhysicalDevice) ([]string, backend.Result, error) {
	pd, err := i.physical(device)
	if err != nil {
		return nil, backend.ErrorInitializationFailed, err
	}
	extensions, res, err := i.driver.EnumerateDeviceExtensionProperties(pd)
	if err != nil {
		return nil, backend.Result(res), err
	}
	return sortedKeys(extensions), backend.Result(res), nil
}

func (i *Instance) GetPhysicalDeviceSurfaceSupport(surface backend.Surface, device backend.PhysicalDevice, queueFamilyIndex int) (bool, backend.Result, error) {
	s, ok := i.surfaces[surface]
	if !ok {
		return false, backend.ErrorSurfaceLost, errors.Newf("vkng: unknown surface %d", uint64(surface))
	}
	pd, err := i.physical(device)
	if err != nil {
		return false, backend.ErrorInitializationFailed, err
	}
	supported, res, err := i.surfaceDriver.GetPhysicalDeviceSurfaceSupport(s, pd, queueFamilyIndex)
	return supported, backend.Result(res), err
}

func (i *Instance) CreateSurface(window any) (backend.Surface, backend.Result, error) {
	if i.surfaceDriver == nil {
		return 0, backend.ErrorExtensionNotPresent, errors.Newf("vkng: %s not enabled", backend.SurfaceExtensionName)
	}
	w, ok := window.(*sdl.Window)
	if !ok || w == nil {
		return 0, backend.ErrorInitializationFailed, errors.Newf("vkng: cannot create a surface for %T", window)
	}

	surface, err := vkng_sdl2.CreateSurface(i.driver.Instance(), i.surfaceDriver, w)
	if err != nil {
		// SDL reports failure without a VkResult.
		return 0, backend.ErrorUnknown, err
	}
	h := backend.Surface(i.handle())
	i.surfaces[h] = surface
	return h, backend.Success, nil
}

func (i *Instance) DestroySurface(surface backend.Surface) {
	s, ok := i.surfaces[surface]
	if !ok {
		return
	}
	i.surfaceDriver.DestroySurface(s, nil)
	delete(i.surfaces, surface)
}

func (i *Instance) CreateDevice(device backend.PhysicalDevice, info backend.DeviceCreateInfo) (backend.Device, backend.Result, error) {
	pd, err := i.physical(device)
	if err != nil {
		return nil, backend.ErrorInitializationFailed, err
	}

	queues := make([]core1_0.DeviceQueueCreateInfo, 0, len(info.QueueCreateInfos))
	for _, q := range info.QueueCreateInfos {
		queues = append(queues, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: q.QueueFamilyIndex,
			QueuePriorities:  q.QueuePriorities,
		})
	}

	// Device layers are deprecated and the loader applies the instance layers to every
	// device, so info.EnabledLayerNames has no vkngwrapper counterpart.
	native, res, err := i.driver.CreateDevice(pd, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queues,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: info.EnabledExtensionNames,
	})
	if err != nil {
		return nil, backend.Result(res), err
	}

	driver, err := i.driver.BuildDeviceDriver(native)
	if err != nil {
		return nil, backend.ErrorInitializationFailed, errors.Wrap(err, "vkng: build device driver")
	}
	return &Device{driver: driver, queues: make(map[backend.Queue]core1_0.Queue)}, backend.Result(res), nil
}

func (i *Instance) DestroyInstance() {
	i.driver.DestroyInstance(nil)
}

var _ backend.Instance = (*Instance)(nil)

// Device wraps a vkngwrapper device driver.
type Device struct {
	driver core1_0.CoreDeviceDriver
	queues map[backend.Queue]core1_0.Queue
}

func (d *Device) GetQueue(queueFamilyIndex, queueIndex int) backend.Queue {
	queue := d.driver.GetQueue(queueFamilyIndex, queueIndex)
	if !queue.Initialized() {
		return 0
	}

	// Equal native queues map to equal handles.
	h := backend.Queue((queueFamilyIndex<<8 | queueIndex) + 1)
	d.queues[h] = queue
	return h
}

// Queue returns the vkngwrapper queue behind h.
func (d *Device) Queue(h backend.Queue) (core1_0.Queue, bool) {
	q, ok := d.queues[h]
	return q, ok
}

func (d *Device) DestroyDevice() {
	d.driver.DestroyDevice(nil)
	clear(d.queues)
}

var _ backend.Device = (*Device)(nil)
