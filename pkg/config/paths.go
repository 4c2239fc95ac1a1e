package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName     = "renumber"
	configFileName = "config.toml"
	stylesFileName = "styles.yaml"
	envPrefix      = "RENUMBER_"
)

// UserConfigPath returns the path of the user configuration file
func UserConfigPath() string {
	return filepath.Join(configHome(), appDirName, configFileName)
}

// UserStylesPath returns the path of the optional terminal styles file
func UserStylesPath() string {
	return filepath.Join(configHome(), appDirName, stylesFileName)
}

func configHome() string {
	// xdg reads the environment once at start up
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return base
	}
	return xdg.ConfigHome
}
