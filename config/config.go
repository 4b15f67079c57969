package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Twilio SMS configuration.
	TwilioAccountSID string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `mapstructure:"TWILIO_FROM_NUMBER"`
	SMSCountryCode   string `mapstructure:"SMS_COUNTRY_CODE"`

	// Clinic settings.
	ClinicName       string `mapstructure:"CLINIC_NAME"`
	ConsultingDoctor string `mapstructure:"CONSULTING_DOCTOR"`
	BookingETA       string `mapstructure:"BOOKING_ETA"`
	TrackURL         string `mapstructure:"TRACK_URL"`

	// Sequencer degraded mode: fall back to a process-local counter when
	// the store is unreachable. Non-durable, single-instance only.
	SequencerAllowFallback bool `mapstructure:"SEQUENCER_ALLOW_FALLBACK"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "ashwini")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_FROM_NUMBER", "")
	viper.SetDefault("SMS_COUNTRY_CODE", "+91")
	viper.SetDefault("CLINIC_NAME", "Ashwini Neuro Super Speciality Center")
	viper.SetDefault("CONSULTING_DOCTOR", "Dr. A Yugandhar Reddy")
	viper.SetDefault("BOOKING_ETA", "30 minutes")
	viper.SetDefault("TRACK_URL", "https://hospital-webapp.netlify.app/track-op")
	viper.SetDefault("SEQUENCER_ALLOW_FALLBACK", false)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
