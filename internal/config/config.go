package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Seed struct {
		DemoData bool `yaml:"demo_data"` // demo accounts and sample jobs
	} `yaml:"seed"`

	FirstAdminEmail    string
	FirstAdminPassword string
}

var AppConfig *Config

// LoadConfig reads config.yaml, unless DATABASE_URL is set in the
// environment, in which case the whole config comes from env vars
// (the mode the test harness and CI use).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60
		cfg.Seed.DemoData = os.Getenv("SEED_DEMO_DATA") == "true"
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}

	// Bootstrap credentials always come from the environment, never the file.
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
