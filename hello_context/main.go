package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/bootstrap"
	"github.com/vkngwrapper/bootstrap/backend/vkng"
	"github.com/vkngwrapper/bootstrap/window/sdl2"
)

type HelloContextApplication struct {
	logger *logrus.Logger
	cfg    bootstrap.Config

	windows *sdl2.Service
	context *bootstrap.Context
}

func (app *HelloContextApplication) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.windows.Quit()

	err = app.initVulkan()
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.mainLoop()
}

func (app *HelloContextApplication) initWindow() error {
	windows, err := sdl2.New()
	if err != nil {
		return err
	}
	app.windows = windows
	return nil
}

func (app *HelloContextApplication) initVulkan() error {
	loader, err := vkng.NewLoader(app.windows.ProcAddr())
	if err != nil {
		return err
	}

	app.context = bootstrap.New(loader, app.windows, app.cfg, bootstrap.WithLogger(app.logger))
	return app.context.Init()
}

func (app *HelloContextApplication) mainLoop() error {
	win := app.context.Window()
	for !win.ShouldClose() {
		app.windows.PollEvents()
	}
	return nil
}

func (app *HelloContextApplication) cleanup() {
	app.context.Teardown()
}

func main() {
	runtime.LockOSThread()

	envFile := flag.String("env", "", "optional .env file with VKNG_* settings")
	verbose := flag.Bool("v", false, "log negotiated extensions and layers")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := bootstrap.LoadConfig(files...)
	if err != nil {
		logger.Fatalln(err)
	}

	app := &HelloContextApplication{
		logger: logger,
		cfg:    cfg,
	}

	err = app.Run()
	if err != nil {
		var initErr *bootstrap.InitializationError
		if errors.As(err, &initErr) {
			logger.WithFields(logrus.Fields{
				"stage":  string(initErr.Stage),
				"status": initErr.Status.String(),
				"state":  initErr.LastState.String(),
			}).Fatalln(err)
		}
		logger.Fatalln(err)
	}
}
