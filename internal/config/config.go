package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"storefront/internal/infrastructure/latency"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDynamoDB = "dynamodb"
)

// Config holds every runtime setting. Values come from the environment,
// which cmd/api seeds from an optional .env file.
type Config struct {
	Port            int
	GinMode         string
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	CatalogSource string
	ProductsTable string
	SeedCatalog   bool
	DynamoDB      DynamoDBConfig

	SimulatedLatency bool
	Latencies        map[latency.Operation]time.Duration
}

// DynamoDBConfig is only used when CatalogSource is "dynamodb".
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

func Load() Config {
	return Config{
		Port:            getenvInt("PORT", 8080),
		GinMode:         ginMode(getenvDefault("GIN_MODE", "release")),
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		LogLevel:  strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getenvDefault("LOG_FORMAT", "console")),

		CatalogSource: strings.ToLower(getenvDefault("CATALOG_SOURCE", CatalogSourceStatic)),
		ProductsTable: getenvDefault("PRODUCTS_TABLE", "products"),
		SeedCatalog:   getenvBool("CATALOG_SEED", false),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},

		SimulatedLatency: getenvBool("SIMULATED_LATENCY", true),
		Latencies: map[latency.Operation]time.Duration{
			latency.OpSearch:       getenvDuration("LATENCY_SEARCH", latency.Defaults[latency.OpSearch]),
			latency.OpAddToCart:    getenvDuration("LATENCY_ADD_TO_CART", latency.Defaults[latency.OpAddToCart]),
			latency.OpPlaceOrder:   getenvDuration("LATENCY_PLACE_ORDER", latency.Defaults[latency.OpPlaceOrder]),
			latency.OpUpdateRating: getenvDuration("LATENCY_UPDATE_RATING", latency.Defaults[latency.OpUpdateRating]),
		},
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// ginMode falls back to release for anything gin.SetMode would reject.
func ginMode(v string) string {
	switch v = strings.ToLower(v); v {
	case "debug", "release", "test":
		return v
	}
	return "release"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getenvBool(key string, def bool) bool {
	switch strings.ToLower(getenvDefault(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(getenvDefault(key, ""))
	if err != nil {
		return def
	}
	return d
}
