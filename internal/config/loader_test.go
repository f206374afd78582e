package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content FolioConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

func writeRawConfig(t *testing.T, dir, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	p := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

// isolatePaths points both implicit layers into tempDir and restores them afterwards.
func isolatePaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "home", userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "work", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolatePaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, 600*time.Millisecond, loaded.UI.TransitionDuration)
	assert.Equal(t, 6, loaded.UI.ProjectsPerPage)
	assert.True(t, loaded.UI.IsDark())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	userOverride := FolioConfig{
		Owner: Owner{Name: "Ada", Email: "ada@example.org"},
		Content: Content{
			Projects: []Project{{Name: "engine", Description: "analytical"}},
		},
	}
	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, userOverride)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Ada", loaded.Owner.Name)
	assert.Equal(t, "ada@example.org", loaded.Owner.Email)
	assert.Equal(t, GetDefaultConfig().Owner.Title, loaded.Owner.Title, "unset scalars keep the default")
	require.Len(t, loaded.Content.Projects, 1, "lists replace wholesale")
	assert.Equal(t, "engine", loaded.Content.Projects[0].Name)
	assert.Equal(t, GetDefaultConfig().Content.Services, loaded.Content.Services)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	writeRawConfig(t, filepath.Join(tempDir, "home", userConfigDir), `
owner:
  email: user@example.org
ui:
  transitionDuration: 1s
`)
	writeRawConfig(t, filepath.Join(tempDir, "work", projectConfigDir), `
owner:
  email: talk@example.org
ui:
  carouselInterval: 2s
  disableBackground: true
  darkMode: false
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "talk@example.org", loaded.Owner.Email)
	assert.Equal(t, time.Second, loaded.UI.TransitionDuration)
	assert.Equal(t, 2*time.Second, loaded.UI.CarouselInterval)
	assert.True(t, loaded.UI.DisableBackground)
	assert.False(t, loaded.UI.IsDark())
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)
	writeRawConfig(t, filepath.Join(tempDir, "work", projectConfigDir), "owner: [unterminated\n")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestLoadConfig_PathErrorsAreNotFatal(t *testing.T) {
	originalGetUserConfigPath := getUserConfigPath
	originalOsGetwd := osGetwd
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		osGetwd = originalOsGetwd
	})
	getUserConfigPath = func() (string, error) { return "", os.ErrNotExist }
	osGetwd = func() (string, error) { return "", os.ErrPermission }

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig().Owner, loaded.Owner)
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	p := writeRawConfig(t, dir, `
content:
  stats:
    - label: Talks
      value: "12"
`)

	loaded, err := LoadConfigFromPath(p)
	require.NoError(t, err)
	assert.Equal(t, []Stat{{Label: "Talks", Value: "12"}}, loaded.Content.Stats)
	assert.Equal(t, GetDefaultConfig().UI, loaded.UI)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	t.Cleanup(func() { osUserHomeDir = original })
	osUserHomeDir = func() (string, error) { return "/home/ada", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/ada", ".config", "folio"), dir)
}
