package config

const (
	defaultRoot          = "~/sceneline"
	defaultSourceSubdir  = "json"
	defaultTextSubdir    = "extract/text"
	defaultSelectSubdir  = "extract/select"
	defaultManifestName  = "jsonlist.txt"
	defaultStampName     = "last_extract_time.txt"
	defaultLogSubdir     = "logs"
	defaultJournalName   = "journal.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultFontMarker    = "%fSourceHanSansCN-M;"
	defaultClosingMarker = "%f;"
)

// defaultPreferredSlots lists the language slot indices tried before any
// content-based scan: Simplified Chinese, then Traditional Chinese.
var defaultPreferredSlots = []int{3, 2}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Root: defaultRoot,
		},
		Extract: Extract{
			PreferredSlots: append([]int(nil), defaultPreferredSlots...),
			Markers:        []string{defaultFontMarker, defaultClosingMarker},
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
