package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
)

const EnvPrefix = "SWC"

// LoadConfig loads a configuration file into the given struct.
// The path param specifies a custom directory with the configuration file.
// Reads and puts environment variables with the prefix SWC_.
// Params from the config should be in uppercase separated with _.
func LoadConfig(config any, path string) error {
	var dirs []string
	if path != "" {
		dirs = append(dirs, path)
	} else {
		dirs = append(dirs, ".", "configs")
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".swc"))
		}
	}
	err := fig.Load(config, fig.File("config.yaml"), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	// the installer should run with no config file at all
	if errors.Is(err, fig.ErrFileNotFound) {
		return LoadConfigEnv(config)
	}
	return err
}

// LoadConfigEnv loads the configuration from struct defaults and
// environment variables only.
func LoadConfigEnv(config any) error {
	return fig.Load(config, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
}
