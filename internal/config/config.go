package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Only the HTTP port is required; every
// other subsystem (catalog file, redis, rabbitmq) has a default or
// degrades gracefully when unset.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	CatalogFile  string // path to the JSON table/menu catalog ("" = built-in defaults)
	SyncConsumer bool   // run the background order-sync consumer in this process
}

// Load reads configuration values from environment variables and
// returns a Config.  The required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         must("APP_PORT"),
		CatalogFile:  os.Getenv("CATALOG_FILE"),
		SyncConsumer: envBool("ORDER_SYNC_CONSUMER", false),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
