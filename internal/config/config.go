package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
	Analytics  Analytics  `mapstructure:",squash"`
	StockAlert StockAlert `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Analytics struct {
	DefaultTopLimit      int            `mapstructure:"analytics_default_top_limit"`
	ComparisonWindowDays int            `mapstructure:"analytics_comparison_window_days"`
	Timezone             string         `mapstructure:"analytics_timezone"`
	Location             *time.Location `mapstructure:"-"`
}

type StockAlert struct {
	CronSchedule      string  `mapstructure:"stock_alert_cron"`
	Enabled           bool    `mapstructure:"stock_alert_enabled"`
	LowStockThreshold float64 `mapstructure:"stock_alert_low_stock_threshold"`
	ExpiryWindowDays  int     `mapstructure:"stock_alert_expiry_window_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inventory?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("ANALYTICS_DEFAULT_TOP_LIMIT", 10)
	viper.SetDefault("ANALYTICS_COMPARISON_WINDOW_DAYS", 30)
	viper.SetDefault("ANALYTICS_TIMEZONE", "UTC")

	viper.SetDefault("STOCK_ALERT_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("STOCK_ALERT_ENABLED", false)
	viper.SetDefault("STOCK_ALERT_LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("STOCK_ALERT_EXPIRY_WINDOW_DAYS", 3)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	if err := config.normalize(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// normalize aplica limites mínimos e resolve o fuso horário das análises
func (c *Config) normalize() error {
	if c.Analytics.DefaultTopLimit <= 0 {
		c.Analytics.DefaultTopLimit = 10
	}

	if c.Analytics.ComparisonWindowDays <= 0 {
		c.Analytics.ComparisonWindowDays = 30
	}

	if c.Analytics.Timezone == "" {
		c.Analytics.Timezone = "UTC"
	}

	location, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		return fmt.Errorf("fuso horário inválido em ANALYTICS_TIMEZONE (%s): %w", c.Analytics.Timezone, err)
	}
	c.Analytics.Location = location

	if c.StockAlert.ExpiryWindowDays < 0 {
		c.StockAlert.ExpiryWindowDays = 0
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
