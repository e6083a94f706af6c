// Package window is the contract between the bootstrap pipeline and the host
// window system. Implementations live in subpackages so the pipeline does not
// depend on any particular window system.
package window

// Service creates windows and pumps the host event queue.
type Service interface {
	CreateWindow(width, height int, title string) (Window, error)

	// PollEvents drains pending events and updates ShouldClose on every window
	// created by the service.
	PollEvents()
}

// Window is a window that can be presented to through the graphics API.
type Window interface {
	// RequiredInstanceExtensions lists the instance extensions needed to
	// create a surface for this window, in the order the window system
	// reports them.
	RequiredInstanceExtensions() ([]string, error)

	ShouldClose() bool

	// Native returns the window system's own handle, handed untouched to
	// backend.Instance.CreateSurface.
	Native() any

	Destroy()
}
