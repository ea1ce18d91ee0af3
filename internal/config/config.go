package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI struct {
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"ai"`
	FAQ struct {
		Min   int  `yaml:"min"`
		Max   int  `yaml:"max"`
		Exact bool `yaml:"exact"`
	} `yaml:"faq"`
	Ingest struct {
		Delimiter string `yaml:"delimiter"`
		MinVolume int    `yaml:"min_volume"`
	} `yaml:"ingest"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	var cfg Config

	// 2. Load YAML config; a missing file falls back to defaults
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	if apiKey := os.Getenv("SEOGEN_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if model := os.Getenv("SEOGEN_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.AI.TimeoutSeconds <= 0 {
		cfg.AI.TimeoutSeconds = 120
	}
	if cfg.FAQ.Min <= 0 {
		cfg.FAQ.Min = 15
	}
	if cfg.FAQ.Max < cfg.FAQ.Min {
		cfg.FAQ.Max = 20
	}
	if cfg.Ingest.Delimiter == "" {
		cfg.Ingest.Delimiter = ";"
	}
	if cfg.Ingest.MinVolume <= 0 {
		cfg.Ingest.MinVolume = 400
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
