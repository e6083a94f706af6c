package bootstrap

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/vkngwrapper/bootstrap/backend"
)

// Environment keys read by LoadConfig and ParseConfig.
const (
	EnvAppName          = "VKNG_APP_NAME"
	EnvEngineName       = "VKNG_ENGINE_NAME"
	EnvDiagnostics      = "VKNG_DIAGNOSTICS"
	EnvValidationLayers = "VKNG_VALIDATION_LAYERS"
	EnvPortability      = "VKNG_PORTABILITY"
	EnvWindowWidth      = "VKNG_WINDOW_WIDTH"
	EnvWindowHeight     = "VKNG_WINDOW_HEIGHT"
	EnvWindowTitle      = "VKNG_WINDOW_TITLE"
)

// WindowConfig describes the window a Context opens.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// Config is the immutable input of a Context. Build it once at startup and
// pass it by value.
type Config struct {
	ApplicationName string
	EngineName      string

	// Diagnostics enables the validation layers in ValidationLayers and the
	// debug messenger.
	Diagnostics      bool
	ValidationLayers []string

	// Portability enables VK_KHR_portability_enumeration when the loader
	// offers it. VK_KHR_portability_subset is enabled on any device that
	// advertises it regardless of this flag.
	Portability bool

	Window WindowConfig
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		ApplicationName:  "Hello Triangle",
		EngineName:       "No Engine",
		Diagnostics:      true,
		ValidationLayers: []string{backend.KhronosValidationLayerName},
		Portability:      true,
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Vulkan",
		},
	}
}

// LoadConfig loads the given .env files into the process environment and
// reads the configuration from it. Unset keys keep their DefaultConfig value.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := envy.Load(files...); err != nil {
			return Config{}, errors.Wrap(err, "config: load env files")
		}
	}
	return readConfig(envy.Get)
}

// ParseConfig reads the configuration from a dotenv stream. The process
// environment is not consulted.
func ParseConfig(r io.Reader) (Config, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: parse")
	}
	return readConfig(func(key, fallback string) string {
		if v, ok := values[key]; ok {
			return v
		}
		return fallback
	})
}

func readConfig(get func(key, fallback string) string) (Config, error) {
	cfg := DefaultConfig()
	var err error

	cfg.ApplicationName = get(EnvAppName, cfg.ApplicationName)
	cfg.EngineName = get(EnvEngineName, cfg.EngineName)
	cfg.Window.Title = get(EnvWindowTitle, cfg.Window.Title)

	if cfg.Diagnostics, err = readBool(get, EnvDiagnostics, cfg.Diagnostics); err != nil {
		return Config{}, err
	}
	if cfg.Portability, err = readBool(get, EnvPortability, cfg.Portability); err != nil {
		return Config{}, err
	}
	if cfg.Window.Width, err = readSize(get, EnvWindowWidth, cfg.Window.Width); err != nil {
		return Config{}, err
	}
	if cfg.Window.Height, err = readSize(get, EnvWindowHeight, cfg.Window.Height); err != nil {
		return Config{}, err
	}

	if layers, ok := lookup(get, EnvValidationLayers); ok {
		cfg.ValidationLayers = splitList(layers)
	}

	return cfg, nil
}

// lookup tells an empty value apart from an unset key.
func lookup(get func(key, fallback string) string, key string) (string, bool) {
	const unset = "\x00unset"
	v := get(key, unset)
	if v == unset {
		return "", false
	}
	return v, true
}

func readBool(get func(key, fallback string) string, key string, fallback bool) (bool, error) {
	v, ok := lookup(get, key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, errors.Wrapf(err, "config: %s", key)
	}
	return b, nil
}

func readSize(get func(key, fallback string) string, key string, fallback int) (int, error) {
	v, ok := lookup(get, key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.Wrapf(err, "config: %s", key)
	}
	if n <= 0 {
		return 0, errors.Newf("config: %s must be positive, got %d", key, n)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
