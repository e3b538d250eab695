package config

import "os"

type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicURL       string
	Region          string
}

// Configured reports whether enough is set to reach the bucket. When it is
// false the API still starts, only image upload is disabled.
func (sc *StorageConfig) Configured() bool {
	return sc.Endpoint != "" && sc.AccessKeyID != "" && sc.SecretAccessKey != "" && sc.BucketName != ""
}

type Config struct {
	Port      string
	JWTSecret string
	Storage   StorageConfig
}

// Load reads all environment configuration once at startup. Handlers receive
// the resulting Config instead of doing their own env lookups.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:      port,
		JWTSecret: os.Getenv("JWT_SECRET"),
		Storage: StorageConfig{
			Endpoint:        os.Getenv("STORAGE_ENDPOINT"),
			AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("STORAGE_BUCKET_NAME"),
			PublicURL:       os.Getenv("STORAGE_PUBLIC_URL"),
			Region:          "auto",
		},
	}
}
