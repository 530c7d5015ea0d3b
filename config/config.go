// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/strs-cli/strs/constant"
	"github.com/strs-cli/strs/filesystem"
	"github.com/strs-cli/strs/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and file resolution.
//
// When file is non-empty it names the exact configuration file to read and any
// read failure, including a missing file, is an error. Otherwise the file
// strs.toml is looked up in the user configuration directory and its absence
// falls back to registered defaults.
func Setup(file string) error {
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.Strs)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if file != "" {
		viper.SetConfigFile(file)
		return viper.ReadInConfig()
	}

	viper.SetConfigName(constant.Strs)
	viper.AddConfigPath(where.Config())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
