package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	BackendFile  = "file"
	BackendGData = "gdata"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Settings Settings `yaml:"settings"`
	Words    Words    `yaml:"words"`
	Daily    Daily    `yaml:"daily"`
	Window   Window   `yaml:"window"`
}

// Settings selects where player settings are persisted.
type Settings struct {
	Backend string `yaml:"backend" env:"WORDLE_SETTINGS_BACKEND" env-default:"file"`
	File    string `yaml:"file" env:"WORDLE_SETTINGS_FILE" env-default:"wordle_settings.json"`
	AppName string `yaml:"app-name" env:"WORDLE_APP_NAME" env-default:"wordle"`
}

// Words selects the frequency corpus. CorpusDB wins over Dir; with neither
// set the embedded lists are used.
type Words struct {
	Dir      string `yaml:"dir" env:"WORDS_DIR"`
	CorpusDB string `yaml:"corpus-db" env:"WORDS_CORPUS_DB"`
	TopN     int    `yaml:"top-n" env:"WORDS_TOP_N" env-default:"100000"`
}

type Daily struct {
	Salt string `yaml:"salt" env:"DAILY_SALT" env-default:"local_dev_salt"`
}

type Window struct {
	Width  int `yaml:"width" env:"WINDOW_WIDTH" env-default:"400"`
	Height int `yaml:"height" env:"WINDOW_HEIGHT" env-default:"600"`
}

// Load reads configuration from the YAML file at path (env vars override it),
// or from the environment alone when path is empty.
func Load(path string) (*Config, error) {
	conf := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, conf)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// MustLoad - like Load, but panics on error.
func MustLoad(path string) *Config {
	conf, err := Load(path)
	if err != nil {
		panic(err)
	}
	return conf
}

func (that *Config) validate() error {
	switch that.Settings.Backend {
	case BackendFile, BackendGData:
	default:
		return fmt.Errorf("config: unknown settings backend %q", that.Settings.Backend)
	}
	if that.Window.Width <= 0 || that.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", that.Window.Width, that.Window.Height)
	}
	return nil
}
