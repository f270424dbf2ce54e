// Package config holds the runtime settings of the post generator.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables (POSTGEN_*, plus the conventional PORT, HF_TOKEN and
// GITHUB_TOKEN).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen        string `yaml:"listen"`
	LogFile       string `yaml:"log_file"`
	FontDir       string `yaml:"font_dir"`
	DefaultFont   string `yaml:"default_font"`
	EmojiFontPath string `yaml:"emoji_font_path"`
	OutputPath    string `yaml:"output_path"`
	CanvasWidth   int    `yaml:"canvas_width"`
	CanvasHeight  int    `yaml:"canvas_height"`

	GitHub  GitHubConfig  `yaml:"github"`
	Summary SummaryConfig `yaml:"summary"`
}

type GitHubConfig struct {
	APIBase      string `yaml:"api_base"`
	Token        string `yaml:"-"`
	DefaultRepo  string `yaml:"default_repo"`
	ContentLimit int    `yaml:"content_limit"`
}

type SummaryConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Token     string `yaml:"-"`
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
}

func Default() Config {
	return Config{
		Listen:        ":8080",
		LogFile:       "logs/app.log",
		FontDir:       "fonts",
		DefaultFont:   "Roboto-Black.ttf",
		EmojiFontPath: "assets/NotoEmoji-Regular.ttf",
		OutputPath:    "output/instagram_post.png",
		CanvasWidth:   1080,
		CanvasHeight:  1080,
		GitHub: GitHubConfig{
			APIBase:      "https://api.github.com",
			DefaultRepo:  "huggingface/transformers",
			ContentLimit: 500,
		},
		Summary: SummaryConfig{
			Endpoint:  "https://api-inference.huggingface.co/models/facebook/bart-large-cnn",
			MinLength: 20,
			MaxLength: 50,
		},
	}
}

// Load builds the configuration. A missing file at path is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	if port, ok := lookup("PORT"); ok && port != "" {
		c.Listen = ":" + port
	}
	str("POSTGEN_LISTEN", &c.Listen)
	str("POSTGEN_LOG_FILE", &c.LogFile)
	str("POSTGEN_FONT_DIR", &c.FontDir)
	str("POSTGEN_DEFAULT_FONT", &c.DefaultFont)
	str("POSTGEN_EMOJI_FONT", &c.EmojiFontPath)
	str("POSTGEN_OUTPUT_PATH", &c.OutputPath)
	str("POSTGEN_GITHUB_API", &c.GitHub.APIBase)
	str("POSTGEN_DEFAULT_REPO", &c.GitHub.DefaultRepo)
	str("GITHUB_TOKEN", &c.GitHub.Token)
	str("POSTGEN_SUMMARY_ENDPOINT", &c.Summary.Endpoint)
	str("HF_TOKEN", &c.Summary.Token)

	for key, dst := range map[string]*int{
		"POSTGEN_CANVAS_WIDTH":       &c.CanvasWidth,
		"POSTGEN_CANVAS_HEIGHT":      &c.CanvasHeight,
		"POSTGEN_CONTENT_LIMIT":      &c.GitHub.ContentLimit,
		"POSTGEN_SUMMARY_MIN_LENGTH": &c.Summary.MinLength,
		"POSTGEN_SUMMARY_MAX_LENGTH": &c.Summary.MaxLength,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.FontDir == "" {
		return errors.New("font_dir must be set")
	}
	if c.Summary.MinLength < 0 || c.Summary.MaxLength < c.Summary.MinLength {
		return fmt.Errorf("summary length bounds invalid: min %d max %d", c.Summary.MinLength, c.Summary.MaxLength)
	}
	if c.GitHub.ContentLimit <= 0 {
		return fmt.Errorf("github content_limit must be positive, got %d", c.GitHub.ContentLimit)
	}
	return nil
}
