package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The data file path points at the JSON
// snapshot that holds every user, movie, show and booking.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	DataFile   string // path to the snapshot file (users + movies)
	BcryptCost int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing
// values cause the program to exit with a fatal log message.  DATA_FILE
// and BCRYPT_COST have defaults so a bare environment still boots.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),                  // environment (dev/test/prod)
		Port:       must("APP_PORT"),                 // port to bind the HTTP server
		DataFile:   getenv("DATA_FILE", "data.json"), // snapshot file location
		BcryptCost: envInt("BCRYPT_COST", 10),        // bcrypt cost factor
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
