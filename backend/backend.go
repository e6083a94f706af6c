// Package backend describes the part of the native graphics API that the
// bootstrap pipeline drives: the global loader, the instance, physical
// devices and logical devices, along with the opaque handles they hand out.
//
// The shapes follow the vkngwrapper drivers closely. Queries about a physical
// device live on the Instance, destruction of instance children goes through
// the Instance, and every native call that can fail reports its raw Result
// next to a Go error.
package backend

//go:generate mockgen -destination mocks/backend_mock.go -package mocks github.com/vkngwrapper/bootstrap/backend Loader,Instance,Device

// Loader is the global, pre-instance entry point of a graphics backend.
type Loader interface {
	// AvailableExtensions lists the instance extensions the loader advertises.
	AvailableExtensions() ([]string, Result, error)

	// AvailableLayers lists the installed instance layers.
	AvailableLayers() ([]string, Result, error)

	// CreateInstance creates a new instance. The caller owns the returned
	// Instance and must call DestroyInstance once every child is released.
	CreateInstance(info InstanceCreateInfo) (Instance, Result, error)
}

// Instance is a negotiated connection to the backend.
type Instance interface {
	// ProcAddr looks up an instance-level entry point that is not part of the
	// statically known interface. It returns nil when the name is unknown or
	// the extension providing it was not enabled. Known names are listed with
	// their function types in proc.go.
	ProcAddr(name string) any

	EnumeratePhysicalDevices() ([]PhysicalDevice, Result, error)
	GetPhysicalDeviceProperties(device PhysicalDevice) (PhysicalDeviceProperties, error)
	GetPhysicalDeviceQueueFamilyProperties(device PhysicalDevice) []QueueFamilyProperties
	EnumerateDeviceExtensionProperties(device PhysicalDevice) ([]string, Result, error)
	GetPhysicalDeviceSurfaceSupport(surface Surface, device PhysicalDevice, queueFamilyIndex int) (bool, Result, error)

	// CreateSurface binds a presentation surface to a native window. The
	// window value is whatever the window service exposes as its native
	// handle; backends reject types they do not understand.
	CreateSurface(window any) (Surface, Result, error)
	DestroySurface(surface Surface)

	CreateDevice(device PhysicalDevice, info DeviceCreateInfo) (Device, Result, error)

	DestroyInstance()
}

// Device is a logical device created from a PhysicalDevice.
type Device interface {
	GetQueue(queueFamilyIndex, queueIndex int) Queue
	DestroyDevice()
}

// PhysicalDevice identifies a device exposed by an Instance. Physical devices
// are enumeration results and are never destroyed.
type PhysicalDevice uint64

// Initialized reports whether d refers to a device.
func (d PhysicalDevice) Initialized() bool { return d != 0 }

// Surface is an opaque presentation surface handle.
type Surface uint64

// Initialized reports whether s refers to a live surface.
func (s Surface) Initialized() bool { return s != 0 }

// Messenger is an opaque debug messenger handle.
type Messenger uint64

// Initialized reports whether m refers to a live messenger.
func (m Messenger) Initialized() bool { return m != 0 }

// Queue is an opaque command submission queue handle. Queues are owned by
// their Device.
type Queue uint64

// Initialized reports whether q refers to a queue.
func (q Queue) Initialized() bool { return q != 0 }

// Version is a major.minor.patch triple.
type Version struct {
	Major, Minor, Patch int
}

// Common API versions.
var (
	Vulkan1_0 = Version{Major: 1, Minor: 0}
	Vulkan1_1 = Version{Major: 1, Minor: 1}
	Vulkan1_2 = Version{Major: 1, Minor: 2}
)

// CreateVersion builds a Version.
func CreateVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// InstanceCreateFlags modify instance creation.
type InstanceCreateFlags uint32

// InstanceCreateEnumeratePortability asks the loader to also expose
// portability (non fully conformant) implementations.
const InstanceCreateEnumeratePortability InstanceCreateFlags = 0x1

// InstanceCreateInfo carries everything needed to create an Instance.
type InstanceCreateInfo struct {
	Flags InstanceCreateFlags

	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	EnabledExtensionNames []string
	EnabledLayerNames     []string

	// Messenger, when set, is chained into instance creation so that
	// messages emitted while creating and destroying the instance itself are
	// reported too.
	Messenger *DebugUtilsMessengerCreateInfo
}

// PhysicalDeviceProperties holds the descriptive properties of a device.
type PhysicalDeviceProperties struct {
	DeviceName string
}

// QueueFlags describe the operations a queue family supports.
type QueueFlags uint32

const (
	QueueGraphics      QueueFlags = 0x1
	QueueCompute       QueueFlags = 0x2
	QueueTransfer      QueueFlags = 0x4
	QueueSparseBinding QueueFlags = 0x8
)

// QueueFamilyProperties describes one queue family of a physical device.
type QueueFamilyProperties struct {
	QueueFlags QueueFlags
	QueueCount int
}

// DeviceQueueCreateInfo requests queues from one family.
type DeviceQueueCreateInfo struct {
	QueueFamilyIndex int
	QueuePriorities  []float32
}

// DeviceCreateInfo carries everything needed to create a Device. No device
// features beyond the defaults are ever requested.
type DeviceCreateInfo struct {
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledLayerNames     []string
	EnabledExtensionNames []string
}

// Extension and layer names used during negotiation.
const (
	SurfaceExtensionName                = "VK_KHR_surface"
	DebugUtilsExtensionName             = "VK_EXT_debug_utils"
	PortabilityEnumerationExtensionName = "VK_KHR_portability_enumeration"
	PortabilitySubsetExtensionName      = "VK_KHR_portability_subset"

	KhronosValidationLayerName = "VK_LAYER_KHRONOS_validation"
)
