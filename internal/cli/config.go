package cli

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/fallencrown/crown-cli/internal/storage/file"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	DataDir   string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config populated from the environment. A .env file
// in the working directory is honored when present.
func DefaultConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerURL: getEnvOrDefault("CROWN_SERVER", "http://localhost:8000"),
		DataDir:   getEnvOrDefault("CROWN_DATA_DIR", file.DefaultDir()),
		Output:    getEnvOrDefault("CROWN_OUTPUT", "text"),
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
