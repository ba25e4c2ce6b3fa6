package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk database.
type Config interface {
	BasePath() string
}

// PathConfig pins the database to an explicit directory, bypassing the
// config chain. Used by tests and the --path flag.
type PathConfig string

// BasePath returns the pinned directory.
func (p PathConfig) BasePath() string {
	return string(p)
}

// LoadConfig resolves the database path from, in order: the VALERIAN_PATH
// environment variable, a .valerian config file in the working directory or
// home, and the built-in default.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.valerian/db")
	viper.SetConfigName(".valerian") // .yaml is implicit
	viper.SetEnvPrefix("VALERIAN")
	viper.AutomaticEnv()

	if override := os.Getenv("VALERIAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{path: path}, nil
}

type fileConfig struct {
	path string
}

func (f *fileConfig) BasePath() string {
	return f.path
}
