package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Interpretation pipeline
	Models ModelsConfig
	Parser ParserConfig

	// Task list
	Storage StorageConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ModelsConfig points at the frozen classifier artifacts produced by the
// training scripts. The service refuses to start without them.
type ModelsConfig struct {
	IntentModelPath           string
	IntentVectorizerPath      string
	DescriptionModelPath      string
	DescriptionVectorizerPath string
}

type ParserConfig struct {
	CacheSize int
}

type StorageConfig struct {
	TasksPath string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	Timezone        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Interpretation pipeline
	cfg.Models.IntentModelPath = viper.GetString("models.intent_model_path")
	cfg.Models.IntentVectorizerPath = viper.GetString("models.intent_vectorizer_path")
	cfg.Models.DescriptionModelPath = viper.GetString("models.description_model_path")
	cfg.Models.DescriptionVectorizerPath = viper.GetString("models.description_vectorizer_path")
	cfg.Parser.CacheSize = viper.GetInt("parser.cache_size")

	// Task list
	cfg.Storage.TasksPath = viper.GetString("storage.tasks_path")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("models.intent_model_path", "models/intent.model")
	viper.SetDefault("models.intent_vectorizer_path", "models/intent.vectorizer")
	viper.SetDefault("models.description_model_path", "models/description.model")
	viper.SetDefault("models.description_vectorizer_path", "models/description.vectorizer")
	viper.SetDefault("parser.cache_size", 256)
	viper.SetDefault("storage.tasks_path", "data/tasks.json")
	viper.SetDefault("google_calendar.timezone", "UTC")
}
