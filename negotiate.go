package bootstrap

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
)

// ResolveExtensions returns the instance extensions to enable: the window
// system's in the given order, then VK_EXT_debug_utils when diagnostics is
// set. Duplicates keep their first position. Availability is not checked.
func ResolveExtensions(windowExtensions []string, diagnostics bool) []string {
	extensions := make([]string, 0, len(windowExtensions)+1)
	for _, ext := range windowExtensions {
		extensions = appendUnique(extensions, ext)
	}
	if diagnostics {
		extensions = appendUnique(extensions, backend.DebugUtilsExtensionName)
	}
	return extensions
}

func appendUnique(list []string, name string) []string {
	if slices.Contains(list, name) {
		return list
	}
	return append(list, name)
}

// CheckLayerSupport reports whether every requested layer is installed.
// Failing to enumerate layers is an error, not a false.
func CheckLayerSupport(loader backend.Loader, requested []string) (bool, error) {
	available, res, err := loader.AvailableLayers()
	if err != nil {
		return false, &resultError{cause: errors.Wrap(err, "enumerate layers"), result: res}
	}

	for _, layer := range requested {
		if !slices.Contains(available, layer) {
			return false, nil
		}
	}
	return true, nil
}

// negotiatePortability appends VK_KHR_portability_enumeration when the
// loader offers it and reports whether it did.
func negotiatePortability(loader backend.Loader, extensions []string) ([]string, bool, error) {
	available, res, err := loader.AvailableExtensions()
	if err != nil {
		return extensions, false, &resultError{cause: errors.Wrap(err, "enumerate instance extensions"), result: res}
	}
	if !slices.Contains(available, backend.PortabilityEnumerationExtensionName) {
		return extensions, false, nil
	}
	return appendUnique(extensions, backend.PortabilityEnumerationExtensionName), true, nil
}
