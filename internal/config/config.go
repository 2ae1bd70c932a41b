package config

import (
	"strings"

	"pdf-text-extractor/internal/domain"

	"github.com/spf13/viper"
)

// DefaultMaxInputSize bounds the base64 text read per extraction. 70MB of
// base64 decodes to roughly 50MB of PDF.
const DefaultMaxInputSize int64 = 70 * 1024 * 1024

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	LogLevel       string
	MaxInputSize   int64
	SupabaseURL    string
	SupabaseKey    string
	AllowedOrigins []string
}

// NewConfig creates a new configuration instance from the environment,
// falling back to default values
func NewConfig() domain.Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_INPUT_SIZE", DefaultMaxInputSize)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	port := v.GetString("PORT")
	if port == "" {
		port = v.GetString("SERVER_PORT")
	}

	maxInput := v.GetInt64("MAX_INPUT_SIZE")
	if maxInput <= 0 {
		maxInput = DefaultMaxInputSize
	}

	supabaseKey := v.GetString("SUPABASE_KEY")
	if supabaseKey == "" {
		supabaseKey = v.GetString("SUPABASE_ANON_KEY")
	}

	return &AppConfig{
		ServerPort:     port,
		LogLevel:       v.GetString("LOG_LEVEL"),
		MaxInputSize:   maxInput,
		SupabaseURL:    v.GetString("SUPABASE_URL"),
		SupabaseKey:    supabaseKey,
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetMaxInputSize returns the maximum accepted input size in bytes
func (c *AppConfig) GetMaxInputSize() int64 {
	return c.MaxInputSize
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase API key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
