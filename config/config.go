package config

import (
	"log"
	"os"
)

// Config holds process configuration, read once at startup and read-only
// thereafter.
type Config struct {
	Port       string
	BucketSlug string
	ReadKey    string
	WriteKey   string // optional, mutation endpoints fail without it
}

// Load reads configuration from the environment. Missing store credentials
// are fatal; the dashboard cannot run without read access.
func Load() Config {
	cfg := Config{
		Port:       os.Getenv("PORT"),
		BucketSlug: os.Getenv("COSMIC_BUCKET_SLUG"),
		ReadKey:    os.Getenv("COSMIC_READ_KEY"),
		WriteKey:   os.Getenv("COSMIC_WRITE_KEY"),
	}

	if cfg.BucketSlug == "" {
		log.Fatal("COSMIC_BUCKET_SLUG is required")
	}
	if cfg.ReadKey == "" {
		log.Fatal("COSMIC_READ_KEY is required")
	}
	if cfg.WriteKey == "" {
		log.Println("COSMIC_WRITE_KEY not set, appointment mutations are disabled")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg
}
