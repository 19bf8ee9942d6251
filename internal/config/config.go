package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Notion   NotionConfig  `yaml:"notion"`
	Output   OutputConfig  `yaml:"output"`
	Media    MediaConfig   `yaml:"media"`
	Publish  PublishConfig `yaml:"publish"`
	Watch    WatchConfig   `yaml:"watch"`
	LogLevel string        `yaml:"log_level"`
}

type NotionConfig struct {
	APIKey string `yaml:"api_key"`

	BlogDatabaseID   string `yaml:"blog_database_id"`
	RecipeDatabaseID string `yaml:"recipe_database_id"`

	// Optional reference databases. Bulk relation resolution is enabled only
	// when both are set.
	IngredientDatabaseID       string `yaml:"ingredient_database_id"`
	RecipeIngredientDatabaseID string `yaml:"recipe_ingredient_database_id"`

	// Optional standalone page.
	MealPrepPageID string `yaml:"meal_prep_page_id"`

	BaseURL         string        `yaml:"base_url"`
	Version         string        `yaml:"version"`
	Timeout         time.Duration `yaml:"timeout"`
	RequestInterval time.Duration `yaml:"request_interval"`
}

type OutputConfig struct {
	DataDir   string `yaml:"data_dir"`
	ImagesDir string `yaml:"images_dir"`

	// PublicPrefix is the path prefix the SPA serves downloaded images under;
	// rewritten image references start with it.
	PublicPrefix string `yaml:"public_prefix"`
}

type MediaConfig struct {
	ManifestPath string `yaml:"manifest_path"`
	PruneOrphans bool   `yaml:"prune_orphans"`
}

type PublishConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether the optional run-completion publisher is configured.
func (p PublishConfig) Enabled() bool {
	return p.URL != ""
}

type WatchConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// HasReferenceData reports whether both reference databases are configured,
// which enables bulk relation resolution and the reference-data artifacts.
func (n NotionConfig) HasReferenceData() bool {
	return n.IngredientDatabaseID != "" && n.RecipeIngredientDatabaseID != ""
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Notion.BaseURL == "" {
		c.Notion.BaseURL = "https://api.notion.com/v1"
	}
	if c.Notion.Version == "" {
		c.Notion.Version = "2022-06-28"
	}
	if c.Notion.Timeout == 0 {
		c.Notion.Timeout = 30 * time.Second
	}
	if c.Notion.RequestInterval == 0 {
		// Notion's documented limit is ~3 requests/second.
		c.Notion.RequestInterval = 350 * time.Millisecond
	}
	if c.Output.DataDir == "" {
		c.Output.DataDir = "src/data/notion"
	}
	if c.Output.ImagesDir == "" {
		c.Output.ImagesDir = "public/images/notion"
	}
	if c.Output.PublicPrefix == "" {
		c.Output.PublicPrefix = "/images/notion"
	}
	if c.Publish.Enabled() {
		if c.Publish.Exchange == "" {
			c.Publish.Exchange = "content_fetcher"
		}
		if c.Publish.RoutingKey == "" {
			c.Publish.RoutingKey = "content"
		}
		if c.Publish.QueueName == "" {
			c.Publish.QueueName = "site_content"
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that everything a run cannot start without is present.
// All missing keys are reported at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Notion.APIKey == "" {
		missing = append(missing, "notion.api_key")
	}
	if c.Notion.BlogDatabaseID == "" {
		missing = append(missing, "notion.blog_database_id")
	}
	if c.Notion.RecipeDatabaseID == "" {
		missing = append(missing, "notion.recipe_database_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
