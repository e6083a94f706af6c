package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/backend"
	"github.com/vkngwrapper/bootstrap/window"
)

// CreateSurface binds a presentation surface to win. The surface must be
// destroyed through inst before inst itself.
func CreateSurface(inst backend.Instance, win window.Window) (backend.Surface, error) {
	if win == nil {
		return 0, fail(ErrSurfaceCreation, backend.Success, errors.New("no window"))
	}

	surface, res, err := inst.CreateSurface(win.Native())
	if err != nil {
		return 0, fail(ErrSurfaceCreation, res, err)
	}
	if res.IsError() || !surface.Initialized() {
		if surface.Initialized() {
			inst.DestroySurface(surface)
		}
		return 0, failf(ErrSurfaceCreation, res, "backend returned %s", res)
	}
	return surface, nil
}
