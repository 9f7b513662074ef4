package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

type QRConfig struct {
	Size      int    `mapstructure:"size"`
	Level     string `mapstructure:"level"`
	OutputDir string `mapstructure:"output_dir"`
}

type ShortenConfig struct {
	DefaultExpiryHours uint `mapstructure:"default_expiry_hours"`
	MinSlugLength      int  `mapstructure:"min_slug_length"`
	MaxSlugLength      int  `mapstructure:"max_slug_length"`
	SlugSuggestions    int  `mapstructure:"slug_suggestions"` // Number of alternatives offered when a custom code is taken
}

type PasswordRulesConfig struct {
	MinLength        int  `mapstructure:"min_length"`
	MaxLength        int  `mapstructure:"max_length"`
	RequireUppercase bool `mapstructure:"require_uppercase"`
	RequireLowercase bool `mapstructure:"require_lowercase"`
	RequireDigit     bool `mapstructure:"require_digit"`
	RequireSpecial   bool `mapstructure:"require_special"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	API      APIConfig           `mapstructure:"api"`
	State    StateConfig         `mapstructure:"state"`
	QR       QRConfig            `mapstructure:"qr"`
	Shorten  ShortenConfig       `mapstructure:"shorten"`
	Password PasswordRulesConfig `mapstructure:"password"`
	Logging  LoggingConfig       `mapstructure:"logging"`
}

func LoadConfig() (Config, error) {
	var config Config

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Enable environment variable overrides
	viper.SetEnvPrefix("SHORTDASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// A config file is optional for the client; defaults plus env cover
	// the common case.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Error reading config file: %v", err)
			return config, err
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		log.Printf("Unable to decode into struct: %v", err)
		return config, err
	}

	if config.State.Dir == "" {
		config.State.Dir = defaultStateDir()
	}

	return config, nil
}

func MustLoadConfig() Config {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

// defaultStateDir is where the credential and cached identity live when no
// state dir is configured.
func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".shortdash"
	}
	return filepath.Join(base, "shortdash")
}

func setDefaults() {
	// API defaults
	viper.SetDefault("api.base_url", "http://localhost:3000")
	viper.SetDefault("api.timeout_seconds", 30)

	// State defaults (empty means user config dir)
	viper.SetDefault("state.dir", "")

	// QR defaults
	viper.SetDefault("qr.size", 256)
	viper.SetDefault("qr.level", "medium")
	viper.SetDefault("qr.output_dir", ".")

	// Shorten defaults
	viper.SetDefault("shorten.default_expiry_hours", 24)
	viper.SetDefault("shorten.min_slug_length", 3)
	viper.SetDefault("shorten.max_slug_length", 20)
	viper.SetDefault("shorten.slug_suggestions", 3)

	// Password defaults (mirrors the backend's registration rules)
	viper.SetDefault("password.min_length", 8)
	viper.SetDefault("password.max_length", 64)
	viper.SetDefault("password.require_uppercase", true)
	viper.SetDefault("password.require_lowercase", true)
	viper.SetDefault("password.require_digit", true)
	viper.SetDefault("password.require_special", false)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.pretty", true)
}
