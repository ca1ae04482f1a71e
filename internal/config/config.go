package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Data     DataConfig
	Trend    TrendConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DataConfig - откуда и как читать исходные таблицы и геометрии
type DataConfig struct {
	Source string

	VaccinationFile string
	IncidenceFile   string
	CountiesFile    string
	SettlementsFile string
	CountryFile     string

	RegionColumn           string
	YearColumn             string
	CountyNameProperty     string
	SettlementNameProperty string

	ExtraCities    []string
	AggregateLabel string
}

type TrendConfig struct {
	WindowSize int
}

type LogConfig struct {
	Level string
}

type MetricsConfig struct {
	Enabled bool
}

// Load - читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	v.SetDefault("METRICS_ENABLED", true)

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Data: DataConfig{
			Source:                 strings.ToLower(v.GetString("DATA_SOURCE")),
			VaccinationFile:        v.GetString("DATA_VACCINATION_FILE"),
			IncidenceFile:          v.GetString("DATA_INCIDENCE_FILE"),
			CountiesFile:           v.GetString("DATA_COUNTIES_FILE"),
			SettlementsFile:        v.GetString("DATA_SETTLEMENTS_FILE"),
			CountryFile:            v.GetString("DATA_COUNTRY_FILE"),
			RegionColumn:           v.GetString("DATA_REGION_COLUMN"),
			YearColumn:             v.GetString("DATA_YEAR_COLUMN"),
			CountyNameProperty:     v.GetString("DATA_COUNTY_NAME_PROPERTY"),
			SettlementNameProperty: v.GetString("DATA_SETTLEMENT_NAME_PROPERTY"),
			ExtraCities:            parseList(v.GetString("DATA_EXTRA_CITIES")),
			AggregateLabel:         v.GetString("DATA_AGGREGATE_LABEL"),
		},
		Trend: TrendConfig{
			WindowSize: v.GetInt("TREND_WINDOW_SIZE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	cfg.applyDefaults()

	if cfg.Data.Source != SourceFile && cfg.Data.Source != SourcePostgres {
		return nil, fmt.Errorf("unsupported DATA_SOURCE %q", cfg.Data.Source)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.CORSOrigins == "" {
		c.Server.CORSOrigins = "*"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Data.Source == "" {
		c.Data.Source = SourceFile
	}
	if c.Data.VaccinationFile == "" {
		c.Data.VaccinationFile = "andmestikud/vaktsineerimine.xlsx"
	}
	if c.Data.IncidenceFile == "" {
		c.Data.IncidenceFile = "andmestikud/Haigused.xlsx"
	}
	if c.Data.CountiesFile == "" {
		c.Data.CountiesFile = "andmestikud/maakond.json"
	}
	if c.Data.SettlementsFile == "" {
		c.Data.SettlementsFile = "andmestikud/asustusyksus.json"
	}
	if c.Data.CountryFile == "" {
		c.Data.CountryFile = "andmestikud/estonia.json"
	}
	if c.Data.RegionColumn == "" {
		c.Data.RegionColumn = "Maakond"
	}
	if c.Data.YearColumn == "" {
		c.Data.YearColumn = "Aasta"
	}
	if c.Data.CountyNameProperty == "" {
		c.Data.CountyNameProperty = "MNIMI"
	}
	if c.Data.SettlementNameProperty == "" {
		c.Data.SettlementNameProperty = "ONIMI"
	}
	if len(c.Data.ExtraCities) == 0 {
		c.Data.ExtraCities = []string{"Tallinn", "Narva linn"}
	}
	if c.Data.AggregateLabel == "" {
		c.Data.AggregateLabel = "Eesti kokku"
	}
	if c.Trend.WindowSize <= 0 {
		c.Trend.WindowSize = 5
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения в формате key=value для драйвера pgx
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}
