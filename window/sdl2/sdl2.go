// Package sdl2 implements window.Service with SDL2.
package sdl2

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/bootstrap/window"
)

// Service is a window.Service backed by SDL2. SDL must be driven from the
// thread that initialized it, so callers lock the OS thread before New.
type Service struct {
	windows map[uint32]*Window
}

// New initializes the SDL video subsystem and loads the Vulkan loader so
// that ProcAddr is usable before any window exists.
func New() (*Service, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(err, "sdl: init video")
	}
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "sdl: load vulkan library")
	}

	return &Service{windows: make(map[uint32]*Window)}, nil
}

// ProcAddr returns vkGetInstanceProcAddr of the loader SDL opened.
func (s *Service) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// Quit unloads the Vulkan loader and shuts SDL down. Every window must be
// destroyed first.
func (s *Service) Quit() {
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}

func (s *Service) CreateWindow(width, height int, title string) (window.Window, error) {
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, errors.Wrapf(err, "sdl: create %dx%d window %q", width, height, title)
	}

	id, err := w.GetID()
	if err != nil {
		_ = w.Destroy()
		return nil, errors.Wrap(err, "sdl: window id")
	}

	win := &Window{service: s, id: id, window: w}
	s.windows[id] = win
	return win, nil
}

func (s *Service) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			for _, w := range s.windows {
				w.closing = true
			}
		case *sdl.WindowEvent:
			if e.Event != sdl.WINDOWEVENT_CLOSE {
				continue
			}
			if w, ok := s.windows[e.WindowID]; ok {
				w.closing = true
			}
		}
	}
}

// Window is a window.Window created by SDL.
type Window struct {
	service *Service
	id      uint32
	window  *sdl.Window
	closing bool
}

func (w *Window) RequiredInstanceExtensions() ([]string, error) {
	extensions := w.window.VulkanGetInstanceExtensions()
	if len(extensions) == 0 {
		if err := sdl.GetError(); err != nil {
			return nil, errors.Wrap(err, "sdl: vulkan instance extensions")
		}
		return nil, errors.New("sdl: no vulkan instance extensions reported")
	}
	return extensions, nil
}

func (w *Window) ShouldClose() bool {
	return w.closing
}

// Native returns the *sdl.Window.
func (w *Window) Native() any {
	return w.window
}

func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	_ = w.window.Destroy()
	w.window = nil
	delete(w.service.windows, w.id)
}

var _ window.Service = (*Service)(nil)
var _ window.Window = (*Window)(nil)
