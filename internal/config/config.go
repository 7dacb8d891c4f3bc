package config

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/Jinsoo1210/carrot/internal/calendar"
)

// ThemeConfig holds theme preset and color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// CalendarConfig holds the calendar strip layout.
type CalendarConfig struct {
	ItemWidth      int  `mapstructure:"item_width"`
	InitialRadius  int  `mapstructure:"initial_radius"`
	Batch          int  `mapstructure:"batch"`
	ThresholdItems int  `mapstructure:"threshold_items"`
	FollowScroll   bool `mapstructure:"follow_scroll"`
}

// WindowOptions converts the layout settings into calendar window options.
// The threshold is configured in days and converted to cells.
func (c CalendarConfig) WindowOptions() calendar.WindowOptions {
	opts := calendar.DefaultWindowOptions()
	if c.ItemWidth > 0 {
		opts.ItemWidth = c.ItemWidth
	}
	if c.InitialRadius > 0 {
		opts.InitialRadius = c.InitialRadius
	}
	if c.Batch > 0 {
		opts.Batch = c.Batch
	}
	if c.ThresholdItems >= 0 {
		opts.Threshold = c.ThresholdItems * opts.ItemWidth
	}
	return opts
}

// TodoConfig holds todo list settings.
type TodoConfig struct {
	MaxTitle int `mapstructure:"max_title"`
}

// Config holds the application configuration.
type Config struct {
	DataDir    string         `mapstructure:"data_dir"`
	APIURL     string         `mapstructure:"api_url"`
	TokenStore string         `mapstructure:"token_store"`
	Locale     string         `mapstructure:"locale"`
	LogFile    string         `mapstructure:"log_file"`
	Theme      ThemeConfig    `mapstructure:"theme"`
	Calendar   CalendarConfig `mapstructure:"calendar"`
	Todo       TodoConfig     `mapstructure:"todo"`
}

// LogPath returns the debug log location, defaulting to debug.log in the
// data directory.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "debug.log")
}

// DefaultDataDir returns the default data directory (~/.carrot/).
func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".", ".carrot")
	}
	return filepath.Join(home, ".carrot")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("api_url", "http://127.0.0.1:8000")
	v.SetDefault("token_store", "diskv")
	v.SetDefault("locale", "en")
	v.SetDefault("log_file", "")
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("calendar.item_width", 7)
	v.SetDefault("calendar.initial_radius", 15)
	v.SetDefault("calendar.batch", 15)
	v.SetDefault("calendar.threshold_items", 2)
	v.SetDefault("calendar.follow_scroll", false)
	v.SetDefault("todo.max_title", 14)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "carrot"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: CARROT_API_URL, CARROT_DATA_DIR, etc.
	v.SetEnvPrefix("CARROT")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if expanded, err := homedir.Expand(cfg.DataDir); err == nil {
		cfg.DataDir = expanded
	}

	return cfg, nil
}
