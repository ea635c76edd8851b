package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Colors holds color values for every UI style.
// Values can be xterm-256 codes (0-255) or hex colors (#rrggbb).
type Colors struct {
	Title        string `toml:"title"`
	Header       string `toml:"header"`
	SelectedBG   string `toml:"selected_bg"`
	SelectedFG   string `toml:"selected_fg"`
	Waiting      string `toml:"waiting"`
	Generating   string `toml:"generating"`
	Assigned     string `toml:"assigned"`
	Graded       string `toml:"graded"`
	Notification string `toml:"notification"`
	Help         string `toml:"help"`
	Border       string `toml:"border"`
	DialogTitle  string `toml:"dialog_title"`
	DialogActive string `toml:"dialog_active"`
	DialogDim    string `toml:"dialog_dim"`
	Error        string `toml:"error"`
	Timer        string `toml:"timer"`
	TimerDanger  string `toml:"timer_danger"`
	Spinner      string `toml:"spinner"`
	Strategy     string `toml:"strategy"`
	Logo         string `toml:"logo"`
}

// AI holds settings for the strategy generation service. The API key is
// environment-only so it never lands in a config file.
type AI struct {
	Model          string `toml:"model" env:"GEMINI_MODEL"`
	TimeoutSeconds int    `toml:"timeout_seconds" env:"GEMINI_TIMEOUT_SECONDS"`
	APIKey         string `toml:"-" env:"GEMINI_API_KEY"`
}

// Timer holds the classroom countdown settings.
type Timer struct {
	Seconds int `toml:"seconds"`
}

// Config is the top-level configuration.
type Config struct {
	Colors Colors `toml:"colors"`
	AI     AI     `toml:"ai"`
	Timer  Timer  `toml:"timer"`
}

// Default returns a Config populated with the current hardcoded defaults.
func Default() Config {
	return Config{
		Colors: Colors{
			Title:        "#cba6f7", // Mauve
			Header:       "#89b4fa", // Blue
			SelectedBG:   "#313244", // Surface 0
			SelectedFG:   "#cdd6f4", // Text
			Waiting:      "#f9e2af", // Yellow
			Generating:   "#89b4fa", // Blue
			Assigned:     "#94e2d5", // Teal
			Graded:       "#a6e3a1", // Green
			Notification: "#a6adc8", // Subtext 0
			Help:         "#7f849c", // Overlay 1
			Border:       "#585b70", // Surface 2
			DialogTitle:  "#cba6f7", // Mauve
			DialogActive: "#cba6f7", // Mauve
			DialogDim:    "#7f849c", // Overlay 1
			Error:        "#f38ba8", // Red
			Timer:        "#cdd6f4", // Text
			TimerDanger:  "#f38ba8", // Red
			Spinner:      "#cba6f7", // Mauve
			Strategy:     "#b4befe", // Lavender
			Logo:         "#cba6f7", // Mauve
		},
		AI: AI{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 30,
		},
		Timer: Timer{
			Seconds: 1800,
		},
	}
}

// Path returns the config file path, respecting XDG_CONFIG_HOME.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "motorcreativo", "motorcreativo.conf")
}

// Load reads the config file and applies environment overrides. Omitted
// fields keep their default values. If the file does not exist, defaults
// plus environment are returned with no error.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := env.Parse(&cfg.AI); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const defaultFileContent = `# Motor Creativo configuration
# Uncomment and modify values to customize. All values are optional.
# Colors can be hex (#rrggbb) or xterm-256 codes (0-255).
# Defaults use the Catppuccin Mocha palette.
# The Gemini API key is read from the GEMINI_API_KEY environment variable.

[colors]
# title         = "#cba6f7"  # Mauve
# header        = "#89b4fa"  # Blue
# selected_bg   = "#313244"  # Surface 0
# selected_fg   = "#cdd6f4"  # Text
# waiting       = "#f9e2af"  # Yellow
# generating    = "#89b4fa"  # Blue
# assigned      = "#94e2d5"  # Teal
# graded        = "#a6e3a1"  # Green
# notification  = "#a6adc8"  # Subtext 0
# help          = "#7f849c"  # Overlay 1
# border        = "#585b70"  # Surface 2
# dialog_title  = "#cba6f7"  # Mauve
# dialog_active = "#cba6f7"  # Mauve
# dialog_dim    = "#7f849c"  # Overlay 1
# error         = "#f38ba8"  # Red
# timer         = "#cdd6f4"  # Text
# timer_danger  = "#f38ba8"  # Red
# spinner       = "#cba6f7"  # Mauve
# strategy      = "#b4befe"  # Lavender
# logo          = "#cba6f7"  # Mauve

[ai]
# model           = "gemini-2.0-flash"
# timeout_seconds = 30

[timer]
# seconds = 1800   # classroom countdown (30 minutes)
`

// WriteDefault writes the default config file with all values commented out.
// It no-ops if the file already exists. Parent directories are created as needed.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // file already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultFileContent), 0o644)
}
