package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	// DataDir holds both the sqlite database and the JSON store.
	DataDir string

	// RejectPastBookings makes request creation refuse calendar dates before
	// today. Off by default to match the observed portal behavior.
	RejectPastBookings bool

	// MPAccessToken enables real Mercado Pago top-up preferences; empty means
	// wallet top-ups are credited directly in demo mode.
	MPAccessToken string
}

func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		JWTSecret:          getEnv("JWT_SECRET", "changeme"),
		DataDir:            getEnv("DATA_DIR", "./data"),
		RejectPastBookings: getBool("REJECT_PAST_BOOKINGS", false),
		MPAccessToken:      getEnv("MP_ACCESS_TOKEN", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
