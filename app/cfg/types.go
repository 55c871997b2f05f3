package cfg

type Cfg struct {
	// Scrape configuration
	OutputDir   string
	TagsFile    string
	Tags        string
	Pages       int
	MaxPages    int
	DelayMin    float64
	DelayMax    float64
	Timeout     int
	UserAgent   string
	WorkerCount int
	AuthorBios  bool

	// Archive configuration
	Database   string
	NoDatabase bool

	// Serve mode
	Serve bool
	Port  string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
