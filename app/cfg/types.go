package cfg

type Cfg struct {
	// Input configuration
	DataFile     string
	RulesFile    string
	FeedCacheDir string

	// Output configuration
	NoMappings bool

	// Application metadata
	Debug   bool
	Version string
}
