package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Dataset           Dataset           `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Feedback          Feedback          `mapstructure:",squash"`
	FeedbackRetention FeedbackRetention `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Path          string `mapstructure:"dataset_path"`
	Sheet         string `mapstructure:"dataset_sheet"`
	TableRowLimit int    `mapstructure:"table_row_limit"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Feedback struct {
	Store string `mapstructure:"feedback_store"` // memory | postgres
}

type FeedbackRetention struct {
	CronSchedule string `mapstructure:"feedback_retention_cron"`
	Days         int    `mapstructure:"feedback_retention_days"`
	Enabled      bool   `mapstructure:"feedback_retention_enabled"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
}

const (
	FeedbackStoreMemory   = "memory"
	FeedbackStorePostgres = "postgres"
)

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "10000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATASET_PATH", "Business_Sales_Dataset.csv")
	viper.SetDefault("DATASET_SHEET", "")
	viper.SetDefault("TABLE_ROW_LIMIT", 10)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FEEDBACK_STORE", FeedbackStoreMemory)

	viper.SetDefault("FEEDBACK_RETENTION_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("FEEDBACK_RETENTION_DAYS", 90)
	viper.SetDefault("FEEDBACK_RETENTION_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")
	viper.SetDefault("ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Feedback.Store = strings.ToLower(strings.TrimSpace(config.Feedback.Store))
	config.Database.DSN = config.Database.Driver + "://" + config.Database.User + ":" +
		config.Database.Password + "@" + config.Database.URL

	if config.Dataset.TableRowLimit <= 0 {
		config.Dataset.TableRowLimit = 10
	}

	return config, nil
}

// loadEnvFile procura um arquivo .env no diretório atual e nos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
