package bootstrap

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/bootstrap/backend"
)

// CreateInstance creates an instance with the given extensions. When
// cfg.Diagnostics is set the layers are checked and enabled, and messages
// emitted while the instance is created or destroyed go to the standard
// logger.
func CreateInstance(loader backend.Loader, cfg Config, extensions []string, layers []string) (backend.Instance, error) {
	return createInstance(loader, cfg, extensions, layers, LogSink(logrus.StandardLogger()))
}

func createInstance(loader backend.Loader, cfg Config, extensions []string, layers []string, sink Sink) (backend.Instance, error) {
	info := backend.InstanceCreateInfo{
		ApplicationName:       cfg.ApplicationName,
		ApplicationVersion:    backend.CreateVersion(1, 0, 0),
		EngineName:            cfg.EngineName,
		EngineVersion:         backend.CreateVersion(1, 0, 0),
		APIVersion:            backend.Vulkan1_2,
		EnabledExtensionNames: slices.Clone(extensions),
	}

	if cfg.Diagnostics {
		supported, err := CheckLayerSupport(loader, layers)
		if err != nil {
			return nil, fail(ErrUnsupportedLayer, ResultOf(err), err)
		}
		if !supported {
			return nil, failf(ErrUnsupportedLayer, backend.Success, "requested %v", layers)
		}
		info.EnabledLayerNames = slices.Clone(layers)

		messenger := messengerCreateInfo(sink)
		info.Messenger = &messenger
	}

	if cfg.Portability {
		var enumerate bool
		var err error
		info.EnabledExtensionNames, enumerate, err = negotiatePortability(loader, info.EnabledExtensionNames)
		if err != nil {
			return nil, fail(ErrInstanceCreation, ResultOf(err), err)
		}
		if enumerate {
			info.Flags |= backend.InstanceCreateEnumeratePortability
		}
	}

	instance, res, err := loader.CreateInstance(info)
	if err != nil {
		if res == backend.Success {
			res = backend.ErrorInitializationFailed
		}
		return nil, fail(ErrInstanceCreation, res, err)
	}
	if res.IsError() {
		if instance != nil {
			instance.DestroyInstance()
		}
		return nil, failf(ErrInstanceCreation, res, "loader returned %s", res)
	}
	if instance == nil {
		return nil, fail(ErrInstanceCreation, backend.ErrorInitializationFailed, errors.New("loader returned no instance"))
	}
	return instance, nil
}
