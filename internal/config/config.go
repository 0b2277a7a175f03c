package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	CanteenName string
	SeedFile    string
	AdminEmail  string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      os.Getenv("APP_ENV"),
		CanteenName: os.Getenv("CANTEEN_NAME"),
		SeedFile:    os.Getenv("SEED_FILE"),
		AdminEmail:  os.Getenv("ADMIN_EMAIL"),
	}

	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.CanteenName == "" {
		cfg.CanteenName = "AdNU Campus Canteen"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@adnu.edu.ph"
	}

	return cfg
}
