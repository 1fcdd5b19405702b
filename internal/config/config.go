package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults match a stock json-server setup so the tutorial works
// against either backend out of the box.
const (
	DefaultAPIURL    = "http://localhost:3000"
	DefaultServeAddr = ":3000"
)

const (
	envAPIURL    = "TODO_API_URL"
	envServeAddr = "TODO_ADDR"
)

// Load reads an optional .env from the working directory and resolves
// settings from the environment. A missing .env is not an error.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		APIURL:    getenvDefault(envAPIURL, DefaultAPIURL),
		ServeAddr: getenvDefault(envServeAddr, DefaultServeAddr),
	}
}

type Config struct {
	APIURL    string
	ServeAddr string
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
