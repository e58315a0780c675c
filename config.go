package clipmark

// Config holds service configuration, decoded from a YAML file.
type Config struct {
	Addr  string `yaml:"addr"`
	Debug bool   `yaml:"debug"`

	PicGo struct {
		Enabled    bool   `yaml:"enabled"`
		Server     string `yaml:"server"`
		UploadPath string `yaml:"upload_path"`
	} `yaml:"picgo"`

	// NotesDir publishes to a local directory when the vault API is not
	// configured.
	NotesDir string `yaml:"notes_dir"`

	Obsidian struct {
		URL           string `yaml:"url"`
		APIKey        string `yaml:"api_key"`
		ClippingsPath string `yaml:"clippings_path"`
		DateFolder    bool   `yaml:"date_folder"`
		TimeoutSec    int    `yaml:"timeout"`
	} `yaml:"obsidian"`

	WeCom struct {
		WebhookURL string `yaml:"webhook_url"`
	} `yaml:"wecom"`

	LLM struct {
		Enabled bool   `yaml:"enabled"`
		Model   string `yaml:"model"`
	} `yaml:"llm"`

	DBPath string `yaml:"db_path"`
}

// DefaultConfig returns a Config with usable local defaults.
func DefaultConfig() Config {
	cfg := Config{
		Addr:   ":8080",
		DBPath: "clipmark.db",
	}
	cfg.Obsidian.ClippingsPath = "Clippings"
	cfg.Obsidian.DateFolder = true
	cfg.Obsidian.TimeoutSec = 30
	cfg.PicGo.UploadPath = "/upload"
	return cfg
}
