package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir     string
	AdminFile   string
	FoodFile    string
	UserFile    string
	Environment string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		DataDir:     getEnv("DATA_DIR", "resources"),
		AdminFile:   getEnv("ADMIN_FILE", "admin_credentials.csv"),
		FoodFile:    getEnv("FOOD_FILE", "food_items.csv"),
		UserFile:    getEnv("USER_FILE", "users.csv"),
		Environment: getEnv("APP_ENV", "production"),
	}, nil
}

func (c *Config) AdminPath() string { return filepath.Join(c.DataDir, c.AdminFile) }
func (c *Config) FoodPath() string  { return filepath.Join(c.DataDir, c.FoodFile) }
func (c *Config) UserPath() string  { return filepath.Join(c.DataDir, c.UserFile) }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
