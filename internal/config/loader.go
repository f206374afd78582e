package config

import (
	"fmt"
	"os"
	"path/filepath"

	"folio/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/folio"
	projectConfigDir = ".folio"
	configFileName   = "config.yaml"
)

// LoadConfig loads the folio configuration by layering default, user, and project settings.
func LoadConfig() (FolioConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = overlayIfExists(config, userConfigPath)
		if err != nil {
			return FolioConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = overlayIfExists(config, projectConfigPath)
		if err != nil {
			return FolioConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	return config, nil
}

// LoadConfigFromPath layers a single explicit file over the defaults. Unlike
// the implicit layers, the file must exist.
func LoadConfigFromPath(path string) (FolioConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return FolioConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), overlay), nil
}

func overlayIfExists(base FolioConfig, path string) (FolioConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded configuration layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a FolioConfig from a YAML file.
func loadConfigFromFile(filePath string) (FolioConfig, error) {
	var config FolioConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return FolioConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return FolioConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay FolioConfig) FolioConfig {
	merged := base

	// Owner
	setString(&merged.Owner.Name, overlay.Owner.Name)
	setString(&merged.Owner.Title, overlay.Owner.Title)
	setString(&merged.Owner.Tagline, overlay.Owner.Tagline)
	setString(&merged.Owner.Email, overlay.Owner.Email)
	setString(&merged.Owner.Location, overlay.Owner.Location)
	if len(overlay.Owner.Links) > 0 {
		merged.Owner.Links = overlay.Owner.Links
	}

	// UI
	ui := overlay.UI
	if ui.TransitionDuration > 0 {
		merged.UI.TransitionDuration = ui.TransitionDuration
	}
	if ui.CarouselInterval > 0 {
		merged.UI.CarouselInterval = ui.CarouselInterval
	}
	if ui.ProjectsPerPage > 0 {
		merged.UI.ProjectsPerPage = ui.ProjectsPerPage
	}
	if ui.ServicesPerSlide > 0 {
		merged.UI.ServicesPerSlide = ui.ServicesPerSlide
	}
	if ui.MobileBreakpoint > 0 {
		merged.UI.MobileBreakpoint = ui.MobileBreakpoint
	}
	if ui.DisableBackground {
		merged.UI.DisableBackground = true
	}
	if ui.DarkMode != nil {
		merged.UI.DarkMode = ui.DarkMode
	}
	setString(&merged.UI.MarkdownStyle, ui.MarkdownStyle)

	// Content
	c := overlay.Content
	setString(&merged.Content.About, c.About)
	setString(&merged.Content.Contact.Intro, c.Contact.Intro)
	if len(c.Stats) > 0 {
		merged.Content.Stats = c.Stats
	}
	if len(c.TechStack) > 0 {
		merged.Content.TechStack = c.TechStack
	}
	if len(c.CV) > 0 {
		merged.Content.CV = c.CV
	}
	if len(c.Projects) > 0 {
		merged.Content.Projects = c.Projects
	}
	if len(c.Skills) > 0 {
		merged.Content.Skills = c.Skills
	}
	if len(c.Services) > 0 {
		merged.Content.Services = c.Services
	}

	return merged
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
