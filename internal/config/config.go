package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"mlguide/internal/eventbus"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	UI      UISettings     `toml:"ui"`
	Server  ServerSettings `toml:"server"`
	Log     LogSettings    `toml:"log"`
}

// UISettings represents terminal UI configuration
type UISettings struct {
	Animations    bool   `toml:"animations"`
	ShowTips      bool   `toml:"show_tips"`
	ShowFooter    bool   `toml:"show_footer"`
	ShowNoResults bool   `toml:"show_no_results"` // print a line when nothing matches
	Columns       int    `toml:"columns"`         // 0 picks from the terminal width
	InitialQuery  string `toml:"initial_query"`
}

// ServerSettings represents HTTP server configuration
type ServerSettings struct {
	Addr           string   `toml:"addr" env:"MLGUIDE_ADDR"`
	BasePath       string   `toml:"base_path" env:"MLGUIDE_BASE_PATH"`
	AllowedOrigins []string `toml:"allowed_origins" env:"MLGUIDE_ALLOWED_ORIGINS" envSeparator:","`
}

// LogSettings represents logging configuration
type LogSettings struct {
	Level string `toml:"level" env:"MLGUIDE_LOG_LEVEL"`
	File  string `toml:"file" env:"MLGUIDE_LOG_FILE"` // TUI log file, empty for the default
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "mlguide", "config.toml")
}

// NewConfigService creates a config service for path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "%s", path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// Validate checks values that cannot be corrected silently
func (c *Config) Validate() error {
	if c.UI.Columns < 0 || c.UI.Columns > 3 {
		return errors.Newf("ui.columns must be between 0 and 3, got %d", c.UI.Columns)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Newf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			Animations: true,
			ShowTips:   true,
			ShowFooter: true,
		},
		Server: ServerSettings{
			Addr:     ":8080",
			BasePath: "/",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
