package cfg

type Cfg struct {
	// HTTP server configuration
	Port string

	// Upstream fetch configuration
	UserAgent    string
	FetchTimeout int // seconds
	CacheTTL     int // seconds

	// Display heuristics configuration
	SourcesFile string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
