package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	ModelPath    string
	MetadataPath string
	UploadDir    string
	MaxFileSize  int64
	ImageSize    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Port:         getEnv("PORT", "5000"),
		ModelPath:    getEnv("MODEL_PATH", "models/best.onnx"),
		MetadataPath: getEnv("METADATA_PATH", "models/metadata.json"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize:  getEnvAsInt64("MAX_FILE_SIZE", 10<<20),
		ImageSize:    getEnvAsInt("IMAGE_SIZE", 224),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
