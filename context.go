package bootstrap

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/bootstrap/backend"
	"github.com/vkngwrapper/bootstrap/window"
)

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger stage progress is written to. The default is
// logrus.StandardLogger().
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithSink sets where validation messages go. The default is LogSink on the
// context's logger.
func WithSink(sink Sink) Option {
	return func(c *Context) {
		c.sink = sink
	}
}

// Context owns the chain window, instance, debug messenger, surface and
// logical device. Init builds it in that order and Teardown releases it in
// reverse. A Context is not safe for concurrent use.
type Context struct {
	loader  backend.Loader
	windows window.Service
	cfg     Config

	id     uuid.UUID
	logger logrus.FieldLogger
	sink   Sink

	state            State
	window           window.Window
	windowExtensions []string
	instance         backend.Instance
	diagnostics      *Diagnostics
	physicalDevice   backend.PhysicalDevice
	queueFamilies    QueueFamilyIndices
	surface          backend.Surface
	logical          *LogicalContext
}

// New returns an uninitialized Context. Nothing is created until Init.
func New(loader backend.Loader, windows window.Service, cfg Config, opts ...Option) *Context {
	c := &Context{
		loader:  loader,
		windows: windows,
		cfg:     cfg,
		id:      uuid.New(),
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.WithField("context", c.id.String())
	if c.sink == nil {
		c.sink = LogSink(c.logger)
	}
	return c
}

// Init runs every stage in order. On failure everything built so far is
// released, the context is back to Uninitialized and the returned error is
// an *InitializationError.
func (c *Context) Init() error {
	if c.state != Uninitialized || c.window != nil {
		return errors.WithStack(ErrAlreadyInitialized)
	}

	if err := c.run(StageWindow, c.createWindow); err != nil {
		return err
	}
	if err := c.run(StageInstance, c.createInstance); err != nil {
		return err
	}
	if err := c.run(StageDiagnostics, c.setupDiagnostics); err != nil {
		return err
	}
	if err := c.run(StageDevice, c.pickPhysicalDevice); err != nil {
		return err
	}
	if err := c.run(StageSurface, c.createSurface); err != nil {
		return err
	}
	if err := c.run(StageQueueFamilies, c.resolveQueueFamilies); err != nil {
		return err
	}
	if err := c.run(StageLogicalContext, c.createLogicalContext); err != nil {
		return err
	}

	return nil
}

func (c *Context) run(stage Stage, fn func() error) error {
	start := hrtime.Now()
	err := fn()
	log := c.logger.WithFields(logrus.Fields{
		"stage":   string(stage),
		"elapsed": hrtime.Since(start),
	})

	if err == nil {
		log.WithField("state", c.state.String()).Info("stage complete")
		return nil
	}

	initErr := &InitializationError{
		Stage:     stage,
		Status:    ResultOf(err),
		LastState: c.state,
		err:       errors.WithDetailf(err, "context: %s", c.id),
	}
	log.WithError(err).Error("stage failed")
	c.logger.WithField("state", c.state.String()).Warn("tearing down partially built context")
	c.Teardown()
	return initErr
}

func (c *Context) createWindow() error {
	win, err := c.windows.CreateWindow(c.cfg.Window.Width, c.cfg.Window.Height, c.cfg.Window.Title)
	if err != nil {
		return fail(ErrWindowCreation, backend.Success, err)
	}
	c.window = win

	extensions, err := win.RequiredInstanceExtensions()
	if err != nil {
		return fail(ErrWindowCreation, backend.Success, errors.Wrap(err, "required instance extensions"))
	}
	c.windowExtensions = extensions
	return nil
}

func (c *Context) createInstance() error {
	extensions := ResolveExtensions(c.windowExtensions, c.cfg.Diagnostics)
	c.logger.WithFields(logrus.Fields{
		"extensions": extensions,
		"layers":     c.enabledLayers(),
	}).Debug("negotiated instance")

	instance, err := createInstance(c.loader, c.cfg, extensions, c.cfg.ValidationLayers, c.sink)
	if err != nil {
		return err
	}

	c.instance = instance
	c.state = InstanceCreated
	return nil
}

func (c *Context) setupDiagnostics() error {
	diagnostics, err := SetupDiagnostics(c.instance, c.cfg.Diagnostics, c.sink)
	if err != nil {
		return err
	}

	c.diagnostics = diagnostics
	c.state = DiagnosticsReady
	return nil
}

func (c *Context) pickPhysicalDevice() error {
	device, indices, err := PickPhysicalDevice(c.instance, 0)
	if err != nil {
		return err
	}

	c.physicalDevice = device
	c.queueFamilies = indices
	c.state = DeviceSelected
	c.logger.WithField("device", deviceName(c.instance, device)).Info("selected physical device")
	return nil
}

func (c *Context) createSurface() error {
	surface, err := CreateSurface(c.instance, c.window)
	if err != nil {
		return err
	}

	c.surface = surface
	c.state = SurfaceReady
	return nil
}

// resolveQueueFamilies finds the present family now that a surface exists.
// When the selected device cannot present, selection runs again against the
// surface.
func (c *Context) resolveQueueFamilies() error {
	indices, err := FindQueueFamilies(c.instance, c.physicalDevice, c.surface)
	if err != nil {
		return fail(ErrNoSuitableDevice, ResultOf(err), err)
	}
	if indices.IsComplete() {
		c.queueFamilies = indices
		return nil
	}

	c.logger.WithField("device", deviceName(c.instance, c.physicalDevice)).Info("selected device cannot present, selecting again")
	device, indices, err := PickPhysicalDevice(c.instance, c.surface)
	if err != nil {
		return err
	}

	c.physicalDevice = device
	c.queueFamilies = indices
	c.logger.WithField("device", deviceName(c.instance, device)).Info("selected physical device")
	return nil
}

func (c *Context) createLogicalContext() error {
	logical, err := CreateLogicalContext(c.instance, c.physicalDevice, c.queueFamilies, c.enabledLayers(), nil)
	if err != nil {
		return err
	}

	c.logical = logical
	c.state = ContextReady
	c.logger.WithFields(logrus.Fields{
		"graphicsFamily": *c.queueFamilies.GraphicsFamily,
		"presentFamily":  *c.queueFamilies.PresentFamily,
	}).Debug("queues ready")
	return nil
}

func (c *Context) enabledLayers() []string {
	if !c.cfg.Diagnostics {
		return nil
	}
	return c.cfg.ValidationLayers
}

// Teardown releases whatever has been built, logical device first and window
// last, and returns the context to Uninitialized. It is safe to call at any
// time and more than once.
func (c *Context) Teardown() {
	if c.logical != nil {
		c.logical.Destroy()
		c.logical = nil
	}

	if c.surface.Initialized() {
		c.instance.DestroySurface(c.surface)
		c.surface = 0
	}

	if c.diagnostics != nil {
		TeardownDiagnostics(c.instance, c.diagnostics)
		c.diagnostics = nil
	}

	if c.instance != nil {
		c.instance.DestroyInstance()
		c.instance = nil
	}

	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}

	c.windowExtensions = nil
	c.physicalDevice = 0
	c.queueFamilies = QueueFamilyIndices{}
	c.state = Uninitialized
}

// ID identifies the context in logs and error details.
func (c *Context) ID() uuid.UUID { return c.id }

// State reports how far Init has progressed.
func (c *Context) State() State { return c.state }

// Window returns the window, or nil before Init and after Teardown.
func (c *Context) Window() window.Window { return c.window }

// Instance returns the instance, or nil until the instance stage completes.
func (c *Context) Instance() backend.Instance { return c.instance }

// PhysicalDevice returns the selected device, or the null device.
func (c *Context) PhysicalDevice() backend.PhysicalDevice { return c.physicalDevice }

// QueueFamilies returns the queue families resolved on PhysicalDevice.
func (c *Context) QueueFamilies() QueueFamilyIndices { return c.queueFamilies }

// Surface returns the presentation surface, or the null surface.
func (c *Context) Surface() backend.Surface { return c.surface }

// LogicalContext returns the logical device and its queues once the context
// is ContextReady.
func (c *Context) LogicalContext() *LogicalContext { return c.logical }
