package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Storage backends for the seen-badge ledger
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds all configuration for the client
type Config struct {
	API       APIConfig
	Storage   StorageConfig
	Announcer AnnouncerConfig
	Discord   DiscordConfig
	Logging   LoggingConfig
}

// APIConfig points the client at a tikkle server
type APIConfig struct {
	URL string `validate:"required,url"`

	// Session is the server session cookie value
	Session string

	// InviteOrigin is where invite links point; defaults to URL
	InviteOrigin string `validate:"omitempty,url"`

	Timeout    time.Duration `validate:"gt=0"`
	MaxRetries int           `validate:"gte=0,lte=10"`
}

// StorageConfig selects where the seen-badge ledger lives
type StorageConfig struct {
	Backend string `validate:"oneof=file redis memory"`

	// Profile namespaces persisted keys
	Profile string `validate:"required"`

	// Dir is where the file backend keeps one file per profile
	Dir string `validate:"required_if=Backend file"`

	RedisAddr     string `validate:"required_if=Backend redis"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`
}

// AnnouncerConfig tunes badge scanning
type AnnouncerConfig struct {
	// ScanInterval is the watch poll period
	ScanInterval time.Duration `validate:"gte=1s"`

	SerializeScans bool
}

// DiscordConfig holds the optional bot settings
type DiscordConfig struct {
	Token         string
	ChannelID     string
	ApplicationID string
	GuildID       string
}

// Enabled reports whether enough is set to run the bot
func (d DiscordConfig) Enabled() bool {
	return d.Token != "" && d.ChannelID != "" && d.ApplicationID != ""
}

// LoggingConfig selects the logger
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=json console"`
}

var validate = validator.New()

// Load reads .env when present, then the environment
func Load() (*Config, error) {
	// a missing .env is normal
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv builds the configuration from the environment only
func FromEnv() (*Config, error) {
	apiURL := strings.TrimRight(getEnv("TIKKLE_API_URL", "http://localhost:8080"), "/")

	timeout, err := getDurationEnv("TIKKLE_HTTP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	maxRetries, err := getIntEnv("TIKKLE_MAX_RETRIES", 2)
	if err != nil {
		return nil, err
	}

	redisDB, err := getIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	scanInterval, err := getDurationEnv("TIKKLE_SCAN_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}

	serialize, err := getBoolEnv("TIKKLE_SERIALIZE_SCANS", false)
	if err != nil {
		return nil, err
	}

	inviteOrigin := getEnv("TIKKLE_INVITE_ORIGIN", "")
	if inviteOrigin == "" {
		inviteOrigin = apiURL
	}

	cfg := &Config{
		API: APIConfig{
			URL:          apiURL,
			Session:      getEnv("TIKKLE_SESSION", ""),
			InviteOrigin: inviteOrigin,
			Timeout:      timeout,
			MaxRetries:   maxRetries,
		},
		Storage: StorageConfig{
			Backend:       strings.ToLower(getEnv("TIKKLE_STORAGE", StorageFile)),
			Profile:       getEnv("TIKKLE_PROFILE", "default"),
			Dir:           getEnv("TIKKLE_STATE_DIR", defaultStateDir()),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Announcer: AnnouncerConfig{
			ScanInterval:   scanInterval,
			SerializeScans: serialize,
		},
		Discord: DiscordConfig{
			Token:         getEnv("DISCORD_TOKEN", ""),
			ChannelID:     getEnv("DISCORD_CHANNEL_ID", ""),
			ApplicationID: getEnv("APPLICATION_ID", ""),
			GuildID:       getEnv("GUILD_ID", ""),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration after flags have been applied
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv treats a variable that is set but empty as unset
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// defaultStateDir is tikkle under the user's config directory, or the
// working directory when there is no home
func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".tikkle"
	}
	return filepath.Join(dir, "tikkle")
}

func getIntEnv(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBoolEnv(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// getDurationEnv accepts a Go duration or a bare number of seconds
func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}

	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
