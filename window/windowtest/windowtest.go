// Package windowtest provides an in-memory window.Service.
package windowtest

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/bootstrap/window"
)

// Service is a fake window.Service. Windows it creates report Extensions as
// their required instance extensions.
type Service struct {
	Extensions []string

	// FailCreate and FailExtensions force the matching call to fail.
	FailCreate     error
	FailExtensions error

	Windows []*Window
}

// New returns a Service whose windows need the given instance extensions.
func New(extensions ...string) *Service {
	return &Service{Extensions: extensions}
}

func (s *Service) CreateWindow(width, height int, title string) (window.Window, error) {
	if s.FailCreate != nil {
		return nil, s.FailCreate
	}
	w := &Window{service: s, Width: width, Height: height, Title: title}
	s.Windows = append(s.Windows, w)
	return w, nil
}

// PollEvents does nothing; tests close windows with Window.Close.
func (s *Service) PollEvents() {}

// Live returns the windows not yet destroyed.
func (s *Service) Live() []*Window {
	var live []*Window
	for _, w := range s.Windows {
		if !w.Destroyed {
			live = append(live, w)
		}
	}
	return live
}

// Window is a fake window.Window.
type Window struct {
	service *Service

	Width, Height int
	Title         string
	Destroyed     bool
	closing       bool
}

func (w *Window) RequiredInstanceExtensions() ([]string, error) {
	if w.service.FailExtensions != nil {
		return nil, w.service.FailExtensions
	}
	return slices.Clone(w.service.Extensions), nil
}

// Close makes ShouldClose report true.
func (w *Window) Close() {
	w.closing = true
}

func (w *Window) ShouldClose() bool {
	return w.closing
}

// Native returns the fake window itself.
func (w *Window) Native() any {
	return w
}

func (w *Window) Destroy() {
	if w.Destroyed {
		panic(errors.Newf("windowtest: window %q destroyed twice", w.Title))
	}
	w.Destroyed = true
}

var _ window.Service = (*Service)(nil)
var _ window.Window = (*Window)(nil)
