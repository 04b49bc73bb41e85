package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/CristovaoMNunes/tmpkeep/internal/helpers"
)

const settingsDirName = "tmpkeep"

// Settings are optional defaults read from the user's configuration file.
type Settings struct {
	TempRoot     string `yaml:"tempRoot"`
	Prefix       string `yaml:"prefix"`
	PurgePattern string `yaml:"purgePattern"`
}

// SettingsPath returns the location of the configuration file under the XDG
// config home.
func SettingsPath() string {
	return filepath.Join(xdg.ConfigHome, settingsDirName, "config.yaml")
}

// LoadSettings reads the configuration file, tolerating its absence. The
// environment variables TMPKEEP_TEMP_ROOT, TMPKEEP_PREFIX and
// TMPKEEP_PURGE_PATTERN take precedence over file values.
func LoadSettings(fs afero.Fs) (Settings, error) {
	var settings Settings

	path := SettingsPath()
	payload, err := afero.ReadFile(fs, path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Settings{}, fmt.Errorf("failed to read settings file [%s]: %w", path, err)
	default:
		if err := yaml.Unmarshal(payload, &settings); err != nil {
			return Settings{}, fmt.Errorf("failed to parse settings file [%s]: %w", path, err)
		}
	}

	settings.TempRoot = helpers.GetEnv("TMPKEEP_TEMP_ROOT", settings.TempRoot)
	settings.Prefix = helpers.GetEnv("TMPKEEP_PREFIX", settings.Prefix)
	settings.PurgePattern = helpers.GetEnv("TMPKEEP_PURGE_PATTERN", settings.PurgePattern)

	return settings, nil
}
