// Package backendtest provides a scripted, in-memory backend.Loader. It hands
// out fake handles, records every call, keeps an ordered log of destroyed
// objects and reports anything still alive, which lets tests assert on
// release order and leaks without a GPU.
package backendtest

import (
	"fmt"
	"slices"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
)

// Call names accepted by Backend.Fail.
const (
	CallAvailableExtensions = "AvailableExtensions"
	CallAvailableLayers     = "AvailableLayers"
	CallCreateInstance      = "CreateInstance"
	CallCreateMessenger     = "CreateDebugUtilsMessenger"
	CallEnumerateDevices    = "EnumeratePhysicalDevices"
	CallDeviceProperties    = "GetPhysicalDeviceProperties"
	CallDeviceExtensions    = "EnumerateDeviceExtensionProperties"
	CallSurfaceSupport      = "GetPhysicalDeviceSurfaceSupport"
	CallCreateSurface       = "CreateSurface"
	CallCreateDevice        = "CreateDevice"
)

// Object kinds used in the destroy log and the leak report.
const (
	KindInstance  = "instance"
	KindMessenger = "messenger"
	KindSurface   = "surface"
	KindDevice    = "device"
)

// Device describes one physical device the fake exposes.
type Device struct {
	Name     string
	Families []backend.QueueFamilyProperties
	// Present lists the family indices that can present to any surface.
	Present    []int
	Extensions []string
}

// Message is a validation message delivered to live messengers by Emit.
type Message struct {
	Severity backend.MessageSeverity
	Type     backend.MessageType
	Text     string
}

// Backend is a scripted backend.Loader. Configure the exported fields before
// handing it to the code under test. It is not safe for concurrent use.
type Backend struct {
	Extensions []string
	Layers     []string
	Devices    []Device

	// Fail forces a call to report the given status together with an error.
	Fail map[string]backend.Result

	// HideProcs makes ProcAddr resolve nothing, as if the loader did not ship
	// the debug utils entry points even though the extension was enabled.
	HideProcs bool

	// InstanceMessages are delivered to a messenger chained into instance
	// creation while the instance is created.
	InstanceMessages []Message

	calls      []string
	destroyed  []string
	live       map[uint64]string
	nextHandle uint64

	instance *Instance
	logical  []*LogicalDevice
}

// New returns a Backend exposing the given devices, with the Khronos
// validation layer installed and the surface and debug utils extensions
// advertised.
func New(devices ...Device) *Backend {
	return &Backend{
		Extensions: []string{backend.SurfaceExtensionName, backend.DebugUtilsExtensionName},
		Layers:     []string{backend.KhronosValidationLayerName},
		Devices:    devices,
	}
}

// GraphicsAndPresent is a device whose single family does everything.
func GraphicsAndPresent(name string) Device {
	return Device{
		Name:     name,
		Families: []backend.QueueFamilyProperties{{QueueFlags: backend.QueueGraphics | backend.QueueCompute | backend.QueueTransfer, QueueCount: 1}},
		Present:  []int{0},
	}
}

// SplitFamilies is a device whose graphics family cannot present and whose
// second family can.
func SplitFamilies(name string) Device {
	return Device{
		Name: name,
		Families: []backend.QueueFamilyProperties{
			{QueueFlags: backend.QueueGraphics, QueueCount: 1},
			{QueueFlags: backend.QueueTransfer, QueueCount: 2},
		},
		Present: []int{1},
	}
}

// ComputeOnly is a device without any graphics family.
func ComputeOnly(name string) Device {
	return Device{
		Name:     name,
		Families: []backend.QueueFamilyProperties{{QueueFlags: backend.QueueCompute, QueueCount: 4}},
		Present:  []int{0},
	}
}

// Calls returns every recorded call in order.
func (b *Backend) Calls() []string {
	return slices.Clone(b.calls)
}

// Called reports whether name was called at least once.
func (b *Backend) Called(name string) bool {
	return slices.Contains(b.calls, name)
}

// Destroyed returns the kinds of destroyed objects in destruction order.
func (b *Backend) Destroyed() []string {
	return slices.Clone(b.destroyed)
}

// Live returns the kinds of objects that were created and not yet destroyed,
// sorted by creation order.
func (b *Backend) Live() []string {
	handles := make([]uint64, 0, len(b.live))
	for h := range b.live {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	kinds := make([]string, 0, len(handles))
	for _, h := range handles {
		kinds = append(kinds, b.live[h])
	}
	return kinds
}

// Instance returns the last created instance, or nil.
func (b *Backend) Instance() *Instance {
	return b.instance
}

// Emit delivers a message to every live messenger and returns how many
// callbacks ran.
func (b *Backend) Emit(msg Message) int {
	if b.instance == nil {
		return 0
	}
	return b.instance.emit(msg)
}

func (b *Backend) record(call string) (backend.Result, error) {
	b.calls = append(b.calls, call)
	if res, ok := b.Fail[call]; ok {
		return res, errors.Newf("%s: scripted failure: %s", call, res)
	}
	return backend.Success, nil
}

func (b *Backend) create(kind string) uint64 {
	if b.live == nil {
		b.live = make(map[uint64]string)
	}
	b.nextHandle++
	h := b.nextHandle + 0x1000
	b.live[h] = kind
	return h
}

func (b *Backend) destroy(handle uint64) {
	kind, ok := b.live[handle]
	if !ok {
		panic(fmt.Sprintf("backendtest: destroy of unknown or already destroyed handle %#x", handle))
	}
	delete(b.live, handle)
	b.destroyed = append(b.destroyed, kind)
}

func (b *Backend) AvailableExtensions() ([]string, backend.Result, error) {
	if res, err := b.record(CallAvailableExtensions); err != nil {
		return nil, res, err
	}
	return slices.Clone(b.Extensions), backend.Success, nil
}

func (b *Backend) AvailableLayers() ([]string, backend.Result, error) {
	if res, err := b.record(CallAvailableLayers); err != nil {
		return nil, res, err
	}
	return slices.Clone(b.Layers), backend.Success, nil
}

func (b *Backend) CreateInstance(info backend.InstanceCreateInfo) (backend.Instance, backend.Result, error) {
	if res, err := b.record(CallCreateInstance); err != nil {
		return nil, res, err
	}
	for _, layer := range info.EnabledLayerNames {
		if !slices.Contains(b.Layers, layer) {
			return nil, backend.ErrorLayerNotPresent, errors.Newf("layer %s not present", layer)
		}
	}
	for _, ext := range info.EnabledExtensionNames {
		if !slices.Contains(b.Extensions, ext) {
			return nil, backend.ErrorExtensionNotPresent, errors.Newf("extension %s not present", ext)
		}
	}

	inst := &Instance{
		backend:    b,
		handle:     b.create(KindInstance),
		info:       info,
		messengers: make(map[backend.Messenger]backend.DebugUtilsMessengerCallback),
		surfaces:   make(map[backend.Surface]any),
	}
	b.instance = inst

	if info.Messenger != nil && info.Messenger.UserCallback != nil {
		for _, msg := range b.InstanceMessages {
			info.Messenger.UserCallback(msg.Severity, msg.Type, msg.Text)
		}
	}
	return inst, backend.Success, nil
}

var _ backend.Loader = (*Backend)(nil)
