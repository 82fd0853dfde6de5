package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr           string   `yaml:"addr"`
	LogLevel       string   `yaml:"log_level"`
	LogJSON        bool     `yaml:"log_json"`
	SecureCookies  bool     `yaml:"secure_cookies"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	ThreadsPerPage int      `yaml:"threads_per_page"` // board listing window
	RepliesPreview int      `yaml:"replies_preview"`  // replies shown per thread in the listing
}

type Private struct {
	Mongo Mongo `yaml:"mongo"`
}

type Mongo struct {
	Uri        string `yaml:"uri"`
	Dbname     string `yaml:"dbname"`
	Collection string `yaml:"collection"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and applies
// environment overrides (DB_URL, PORT) the way the deployment expects.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Addr == "" {
		c.Public.Addr = ":8080"
	}
	if c.Public.ThreadsPerPage <= 0 {
		c.Public.ThreadsPerPage = 10
	}
	if c.Public.RepliesPreview <= 0 {
		c.Public.RepliesPreview = 3
	}
	if c.Private.Mongo.Collection == "" {
		c.Private.Mongo.Collection = "threads"
	}
}

func (c *Config) applyEnv() {
	if uri := os.Getenv("DB_URL"); uri != "" {
		c.Private.Mongo.Uri = uri
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Public.Addr = ":" + port
	}
}
