package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/melih-ucgun/timedlog"
)

// Format identifies the syntax of a settings source.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatDotenv Format = "dotenv"
)

// Keys read from dotenv sources
const (
	EnvMode     = "TIMEDLOG_MODE"
	EnvSeverity = "TIMEDLOG_SEVERITY"
	EnvFile     = "TIMEDLOG_FILE"
)

// Settings is the engine configuration as read from a file.
type Settings struct {
	Mode     timedlog.Mode
	Severity timedlog.Severity
	File     string
}

// rawSettings is the textual form shared by every format.
type rawSettings struct {
	Mode     string `yaml:"mode"`
	Severity string `yaml:"severity"`
	File     string `yaml:"file"`
}

// Load reads settings from path. The format follows the extension:
// .yaml/.yml for YAML, .env for dotenv.
func Load(path string) (*Settings, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}

func formatFor(path string) (Format, error) {
	base := filepath.Base(path)
	switch ext := strings.ToLower(filepath.Ext(base)); {
	case ext == ".yaml" || ext == ".yml":
		return FormatYAML, nil
	case ext == ".env" || strings.HasPrefix(base, ".env"):
		return FormatDotenv, nil
	default:
		return "", fmt.Errorf("unsupported config file %q", path)
	}
}

// Parse decodes settings from data in the given format.
func Parse(data []byte, format Format) (*Settings, error) {
	var raw rawSettings

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
	case FormatDotenv:
		env, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("dotenv: %w", err)
		}
		raw = rawSettings{
			Mode:     env[EnvMode],
			Severity: env[EnvSeverity],
			File:     env[EnvFile],
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}

	return raw.settings()
}

func (r rawSettings) settings() (*Settings, error) {
	mode, err := timedlog.ParseMode(r.Mode)
	if err != nil {
		return nil, err
	}
	mask, err := timedlog.ParseSeverity(r.Severity)
	if err != nil {
		return nil, err
	}
	return &Settings{
		Mode:     mode,
		Severity: mask,
		File:     strings.TrimSpace(r.File),
	}, nil
}

// Apply configures e with the settings.
func (s *Settings) Apply(e *timedlog.Engine) error {
	return e.Configure(s.Mode, s.Severity, s.File)
}
