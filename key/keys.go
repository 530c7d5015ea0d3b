// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

const (
	// StreamURLs is the ordered list of monitored stream URLs.
	// The identifier matches the config file key of the same name.
	StreamURLs = "stream_urls"

	ProbeCommand = "probe.command"
	ProbeArgs    = "probe.args"

	CliColored      = "cli.colored"
	CliProgress     = "cli.progress"
	CliVersionCheck = "cli.version_check"

	IconsVariant = "icons"

	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
