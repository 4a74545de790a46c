package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	ScenarioFile string // Path to a YAML scenario; empty means the built-in sample
	HostIP       string // Host IP for the REST server
	RESTPort     int    // Port for the REST API
	GinMode      string // Mode for the Gin framework (e.g., release, debug, test)
	CacheSize    int    // Number of solved searches kept by the path service
	LogLevel     string // Minimum log level: debug, info, warn or error
}

// Load reads the configuration from the environment.
// Values from a .env file in the working directory are loaded first if present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	restPort, err := getEnvAsIntWithDefault("REST_PORT", 8080)
	if err != nil {
		return Config{}, err
	}
	cacheSize, err := getEnvAsIntWithDefault("PATH_CACHE_SIZE", 128)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ScenarioFile: getEnvWithDefault("GRIDWALK_SCENARIO", ""),
		HostIP:       getEnvWithDefault("HOST_IP", "127.0.0.1"),
		RESTPort:     restPort,
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
		CacheSize:    cacheSize,
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
	}, nil
}

// Addr returns the host:port the REST server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue when unset.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
