package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".jots-splitter"

//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/note-template.md
var defaultTemplate string

// ConfigOverrides allows overriding embedded defaults with file paths
type ConfigOverrides struct {
	SettingsPath *string
	TemplatePath *string
}

// Settings represents the YAML configuration structure
type Settings struct {
	InputFile       string `yaml:"input_file"`
	OutputDirectory string `yaml:"output_directory"`
	ArchivePath     string `yaml:"archive_path"`
	SkipArchive     bool   `yaml:"skip_archive"`
}

// Validate checks that the paths are usable
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.InputFile, validation.Required),
		validation.Field(&s.OutputDirectory, validation.Required),
		validation.Field(&s.ArchivePath,
			validation.When(!s.SkipArchive, validation.Required),
			validation.By(func(value interface{}) error {
				path, _ := value.(string)
				if path != "" && filepath.Clean(path) == filepath.Clean(s.OutputDirectory) {
					return errors.New("must differ from output_directory")
				}
				return nil
			}),
		),
	)
}

// GetConfigPath returns the full path to a config file
func GetConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// LoadSettings resolves settings from the embedded defaults, the local
// settings file if present, or an explicit settings file that must exist
func LoadSettings(overrides *ConfigOverrides) (*Settings, error) {
	settings, err := parseSettings([]byte(defaultSettings), nil)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded settings: %w", err)
	}

	if overrides != nil && overrides.SettingsPath != nil {
		data, err := os.ReadFile(*overrides.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("reading settings file %s: %w", *overrides.SettingsPath, err)
		}
		return parseSettings(data, settings)
	}

	data, err := os.ReadFile(GetConfigPath("settings.yaml"))
	if err != nil {
		debugLog("no local settings file, using defaults")
		return settings, nil
	}
	return parseSettings(data, settings)
}

// parseSettings decodes YAML on top of base so absent keys keep base values
func parseSettings(data []byte, base *Settings) (*Settings, error) {
	var settings Settings
	if base != nil {
		settings = *base
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	return &settings, nil
}

// LoadTemplate returns the note template (from override file or embedded)
func LoadTemplate(overrides *ConfigOverrides) (string, error) {
	if overrides != nil && overrides.TemplatePath != nil {
		data, err := os.ReadFile(*overrides.TemplatePath)
		if err != nil {
			return "", fmt.Errorf("reading template %s: %w", *overrides.TemplatePath, err)
		}
		return string(data), nil
	}
	return defaultTemplate, nil
}

// ensureConfigExists creates the config directory and writes settings.yaml
// if needed. It reports whether a file was written.
func ensureConfigExists() (bool, error) {
	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		return false, fmt.Errorf("creating config directory: %w", err)
	}

	settingsFile := GetConfigPath("settings.yaml")
	if _, err := os.Stat(settingsFile); err == nil {
		return false, nil
	}

	if err := os.WriteFile(settingsFile, []byte(defaultSettings), 0644); err != nil {
		return false, fmt.Errorf("writing settings.yaml: %w", err)
	}
	return true, nil
}
