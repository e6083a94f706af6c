// Package vkng implements backend.Loader on top of vkngwrapper. Handles
// handed to the pipeline are small integers that map onto the vkngwrapper
// objects held here.
package vkng

import (
	"sort"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

// Loader wraps a vkngwrapper global driver.
type Loader struct {
	driver core1_0.GlobalDriver
}

// NewLoader builds a Loader from vkGetInstanceProcAddr, usually the one
// returned by sdl2.Service.ProcAddr.
func NewLoader(procAddr unsafe.Pointer) (*Loader, error) {
	if procAddr == nil {
		return nil, errors.New("vkng: nil vkGetInstanceProcAddr")
	}
	driver, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "vkng: create global driver")
	}
	return &Loader{driver: driver}, nil
}

func (l *Loader) AvailableExtensions() ([]string, backend.Result, error) {
	extensions, res, err := l.driver.AvailableExtensions()
	if err != nil {
		return nil, backend.Result(res), err
	}
	return sortedKeys(extensions), backend.Result(res), nil
}

func (l *Loader) AvailableLayers() ([]string, backend.Result, error) {
	layers, res, err := l.driver.AvailableLayers()
	if err != nil {
		return nil, backend.Result(res), err
	}
	return sortedKeys(layers), backend.Result(res), nil
}

func (l *Loader) CreateInstance(info backend.InstanceCreateInfo) (backend.Instance, backend.Result, error) {
	options := core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    version(info.ApplicationVersion),
		EngineName:            info.EngineName,
		EngineVersion:         version(info.EngineVersion),
		APIVersion:            common.APIVersion(version(info.APIVersion)),
		EnabledExtensionNames: info.EnabledExtensionNames,
		EnabledLayerNames:     info.EnabledLayerNames,
	}
	if info.Flags&backend.InstanceCreateEnumeratePortability != 0 {
		options.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}
	if info.Messenger != nil {
		options.Next = messengerOptions(*info.Messenger)
	}

	instance, res, err := l.driver.CreateInstance(nil, options)
	if err != nil {
		return nil, backend.Result(res), err
	}

	driver, err := l.driver.BuildInstanceDriver(instance)
	if err != nil {
		// Without a driver the instance cannot be destroyed through vkngwrapper.
		return nil, backend.ErrorInitializationFailed, errors.Wrap(err, "vkng: build instance driver")
	}
	return newInstance(driver, info.EnabledExtensionNames), backend.Result(res), nil
}

func version(v backend.Version) common.Version {
	return common.CreateVersion(uint32(v.Major), uint32(v.Minor), uint32(v.Patch))
}

func messengerOptions(info backend.DebugUtilsMessengerCreateInfo) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	callback := info.UserCallback
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.DebugUtilsMessageSeverityFlags(info.MessageSeverity),
		MessageType:     ext_debug_utils.DebugUtilsMessageTypeFlags(info.MessageType),
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			if callback == nil {
				return false
			}
			var message string
			if data != nil {
				message = data.Message
			}
			return callback(backend.MessageSeverity(severity), backend.MessageType(msgType), message)
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ backend.Loader = (*Loader)(nil)
