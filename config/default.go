// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/strs-cli/strs/constant"
	"github.com/strs-cli/strs/key"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Strs + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.StreamURLs, []string{}, "Ordered list of stream URLs to monitor.\nOnly youtube.com and twitch.tv URLs are accepted")
	register(key.ProbeCommand, "youtube-dl", "External executable used to probe stream liveness.\nAny tool with a \"list formats\" mode works, e.g. yt-dlp or streamlink")
	register(key.ProbeArgs, []string{"-F"}, "Arguments passed to the probe executable before the stream URL.\nThe default asks youtube-dl to list available formats")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliProgress, true, "Show a progress bar while streams are being probed")
	register(key.CliVersionCheck, true, "Enable automatic version check")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\nfatal, error, warn, info, debug")
	register(key.LogsJson, false, "Use json format for logs")
}
