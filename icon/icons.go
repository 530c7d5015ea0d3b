package icon

// Icon identifies a registered UI symbol.
type Icon int

const (
	Online Icon = iota
	Offline
	Fail
	Progress
)

// icons is the global registry mapping identifiers to their per-variant representations.
var icons = map[Icon]*iconDef{
	Online: {
		emoji:   "🟢",
		nerd:    "",
		plain:   "*",
		squares: "🟩",
	},
	Offline: {
		emoji:   "🔴",
		nerd:    "",
		plain:   "-",
		squares: "🟥",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		squares: "🟪",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		squares: "🟨",
	},
}
