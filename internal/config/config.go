// Package config loads quick CLI settings from config.yaml with Viper.
// Values may also come from QUICK_-prefixed environment variables
// (QUICK_RENDER_INLINE, QUICK_RENDER_INDENT, QUICK_LOG_LEVEL).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// FileName is the settings file inside the config directory.
	FileName = "config.yaml"

	envPrefix = "QUICK"
)

// Setting keys.
const (
	KeyInline   = "render.inline"
	KeyIndent   = "render.indent"
	KeyLogLevel = "log.level"
)

// Inline modes for render.inline.
const (
	InlineAuto  = "auto"
	InlineTrue  = "true"
	InlineFalse = "false"
)

// Validation errors.
var (
	ErrInvalidInline   = errors.New("render.inline must be auto, true or false")
	ErrInvalidIndent   = errors.New("render.indent must not be negative")
	ErrInvalidLogLevel = errors.New("invalid log.level")
)

// Render controls debug stream output.
type Render struct {
	Inline string `yaml:"inline"`
	Indent int    `yaml:"indent"`
}

// Log controls the CLI logger.
type Log struct {
	Level string `yaml:"level"`
}

// Settings is the decoded content of config.yaml.
type Settings struct {
	Render Render `yaml:"render"`
	Log    Log    `yaml:"log"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Render: Render{Inline: InlineAuto, Indent: 2},
		Log:    Log{Level: "info"},
	}
}

// Load reads config.yaml from configDir. A missing directory or file is
// not an error; defaults apply.
func Load(configDir string) (*viper.Viper, error) {
	def := Defaults()

	v := viper.New()
	v.SetDefault(KeyInline, def.Render.Inline)
	v.SetDefault(KeyIndent, def.Render.Indent)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// Decode extracts and validates Settings from a loaded Viper instance.
func Decode(v *viper.Viper) (Settings, error) {
	s := Settings{
		Render: Render{
			Inline: strings.ToLower(v.GetString(KeyInline)),
			Indent: v.GetInt(KeyIndent),
		},
		Log: Log{Level: v.GetString(KeyLogLevel)},
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that the settings are well-formed.
func (s Settings) Validate() error {
	switch s.Render.Inline {
	case InlineAuto, InlineTrue, InlineFalse:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidInline, s.Render.Inline)
	}
	if s.Render.Indent < 0 {
		return ErrInvalidIndent
	}
	if _, err := s.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level name (debug, info, warn, error).
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	return level, nil
}

// InlineFor resolves the inline mode for output written to f. In auto mode
// output is inline when f is not a terminal.
func (r Render) InlineFor(f *os.File) bool {
	switch r.Inline {
	case InlineTrue:
		return true
	case InlineFalse:
		return false
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// WriteDefault writes config.yaml with default settings into configDir,
// creating the directory if needed. An existing file is left untouched and
// created is false.
func WriteDefault(configDir string) (created bool, err error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, FileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	def := Defaults()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
