package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Application settings
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Storage StorageConfig
	Editor  EditorConfig
	HTTP    HTTPConfig
}

// Server settings
type ServerConfig struct {
	Port string
}

// Durable slot settings
type StorageConfig struct {
	DataDir  string
	SlotName string
}

// Geometry editor settings
type EditorConfig struct {
	BoundsPadding    int
	DefaultCenterLat float64
	DefaultCenterLng float64
	DefaultZoom      float64
}

// HTTP surface settings
type HTTPConfig struct {
	WriteRatePerSecond int
	WriteRateBurst     int
}

// Logging settings
type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	// A local .env is optional; missing files are not an error.
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Storage: StorageConfig{
			DataDir:  getEnv("DATA_DIR", "data"),
			SlotName: getEnv("STORAGE_SLOT", "ai-ad-sniper-campaigns"),
		},
		Editor: EditorConfig{
			BoundsPadding:    getIntEnv("BOUNDS_PADDING", 50),
			DefaultCenterLat: getFloatEnv("DEFAULT_CENTER_LAT", 37.7749),
			DefaultCenterLng: getFloatEnv("DEFAULT_CENTER_LNG", -122.4194),
			DefaultZoom:      getFloatEnv("DEFAULT_ZOOM", 13),
		},
		HTTP: HTTPConfig{
			WriteRatePerSecond: getIntEnv("WRITE_RATE_PER_SECOND", 25),
			WriteRateBurst:     getIntEnv("WRITE_RATE_BURST", 50),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
