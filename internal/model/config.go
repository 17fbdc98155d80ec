package model

import "time"

// Config holds the full runtime configuration. Values are layered:
// CLI flags > STARTUPAZ_* env vars > ~/.startupaz/config.yaml > defaults.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Scrape ScrapeConfig `yaml:"scrape"`
	Cache  CacheConfig  `yaml:"cache"`
	Output OutputConfig `yaml:"output"`
	LLM    LLMConfig    `yaml:"llm"`
}

// HTTPConfig controls outbound HTTP behavior.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
	MaxRetries   int           `yaml:"max_retries"`
}

// ScrapeConfig controls the directory scraper.
type ScrapeConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Pages             int           `yaml:"pages"`
	PerPage           int           `yaml:"per_page"`
	Workers           int           `yaml:"workers"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	JitterMin         time.Duration `yaml:"jitter_min"`
	JitterMax         time.Duration `yaml:"jitter_max"`
	RespectRobots     bool          `yaml:"respect_robots"`
}

// CacheConfig controls the fetch cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig controls the optional narrative generator.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "" disables the narrative
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // never persisted to config files
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout_seconds"`
	MaxTokens int    `yaml:"max_tokens"`
}

// DefaultConfig returns the built-in defaults. The scrape pacing mirrors
// the crawl budget the directory tolerates: ~1 req/s with a short random
// pause between detail pages.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "startupaz/1.0 (+https://github.com/scraper-bots/startup-az)",
			MaxBodyBytes: 2_000_000,
			MaxRetries:   3,
		},
		Scrape: ScrapeConfig{
			BaseURL:           "https://www.startup.az",
			Pages:             0, // 0 = follow pagination until exhausted
			PerPage:           12,
			Workers:           4,
			RequestsPerSecond: 1,
			Burst:             2,
			JitterMin:         800 * time.Millisecond,
			JitterMax:         1600 * time.Millisecond,
			RespectRobots:     true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".startupaz-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
