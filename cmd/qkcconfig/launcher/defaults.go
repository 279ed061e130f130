package launcher

// Defaults bundles the baseline values the launcher falls back to when a flag
// is left empty.
type Defaults struct {
	Preset  string // topology preset used without --config
	Format  string // output document format
	Logging LoggingDefaults
}

// LoggingDefaults configures the launcher logger.
type LoggingDefaults struct {
	Verbosity int    // 0=fatal .. 5=trace
	Format    string // text or json
}

// DefaultConfig returns the launcher defaults.
func DefaultConfig() Defaults {
	return Defaults{
		Preset: "default",
		Format: "json",
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
		},
	}
}
