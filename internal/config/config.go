package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port                             string `mapstructure:"PORT"`
	GinMode                          string `mapstructure:"GIN_MODE"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	StorageBucket                    string `mapstructure:"STORAGE_BUCKET"`
	ClientURL                        string `mapstructure:"CLIENT_URL"`

	NominatimBaseURL   string `mapstructure:"NOMINATIM_BASE_URL"`
	NominatimUserAgent string `mapstructure:"NOMINATIM_USER_AGENT"`

	// Redis geocode cache; empty address disables caching.
	RedisAddress  string `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// SMTP settings for admin notification mail.
	SMTPHost   string `mapstructure:"SMTP_HOST"`
	SMTPPort   string `mapstructure:"SMTP_PORT"`
	SMTPUser   string `mapstructure:"SMTP_USER"`
	SMTPPass   string `mapstructure:"SMTP_PASS"`
	MailSender string `mapstructure:"MAIL_SENDER"`
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	// AdminNotifyURL is where fire-and-forget notifications are POSTed.
	// Usually this server's own /api/v1/notify-admin endpoint.
	AdminNotifyURL string `mapstructure:"ADMIN_NOTIFY_URL"`

	// TrialReminderSpec is the cron expression for the trial reminder
	// sweep; empty disables the job.
	TrialReminderSpec string `mapstructure:"TRIAL_REMINDER_SPEC"`
}

var appConfig *Config

// LoadConfig loads configuration from the environment using Viper. A .env
// file is honored when present.
func LoadConfig() (*Config, error) {
	// Ignore the error; in deployed environments there is no .env file.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("NOMINATIM_USER_AGENT", "vecino-backend/1.0 (marketplace geocoding)")
	viper.SetDefault("TRIAL_REMINDER_SPEC", "0 9 * * *")

	for _, key := range []string{
		"PORT", "GIN_MODE",
		"FIREBASE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS", "FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
		"STORAGE_BUCKET", "CLIENT_URL",
		"NOMINATIM_BASE_URL", "NOMINATIM_USER_AGENT",
		"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS",
		"MAIL_SENDER", "ADMIN_EMAIL", "ADMIN_NOTIFY_URL",
		"TRIAL_REMINDER_SPEC",
	} {
		viper.BindEnv(key)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.FirebaseProjectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID is required")
	}
	if cfg.GoogleApplicationCredentials == "" && cfg.FirebaseServiceAccountJSONBase64 == "" {
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_JSON_BASE64 is required")
	}

	appConfig = &cfg
	return appConfig, nil
}

// GetConfig returns the loaded application configuration. It panics if
// LoadConfig has not been called successfully.
func GetConfig() *Config {
	if appConfig == nil {
		panic("config not loaded; call LoadConfig first")
	}
	return appConfig
}
