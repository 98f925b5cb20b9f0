package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-stats/internal/api/http"
	"github.com/jekabolt/grbpwr-stats/internal/auth/jwt"
	"github.com/jekabolt/grbpwr-stats/internal/statistics"
	"github.com/jekabolt/grbpwr-stats/internal/store"
	"github.com/jekabolt/grbpwr-stats/log"
	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// StoreConfig selects the repository backing the reports.
type StoreConfig struct {
	// Driver is either mysql or memory.
	Driver string `mapstructure:"driver"`
	// Fixture is the JSON file loaded by the memory driver.
	Fixture string `mapstructure:"fixture"`
}

// Config represents the global configuration for the service.
type Config struct {
	DB         store.Config      `mapstructure:"mysql"`
	Logger     log.Config        `mapstructure:"logger"`
	HTTP       httpapi.Config    `mapstructure:"http"`
	Auth       jwt.Config        `mapstructure:"auth"`
	Statistics statistics.Config `mapstructure:"statistics"`
	Store      StoreConfig       `mapstructure:"store"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, AUTH_JWT_SECRET
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	// e.g., mysql.dsn -> MYSQL__DSN, auth.jwt_secret -> AUTH__JWT_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/grbpwr-stats")
		v.AddConfigPath("/etc/grbpwr-stats")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Handle MySQL DSN construction from individual env vars if DSN is not set
	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")

		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				tls := ""
				if config.DB.TLSCAPath != "" {
					tls = "&tls=custom"
				}
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true%s",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase, tls)
			}
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverMySQL:
		if c.DB.DSN == "" {
			return fmt.Errorf("mysql.dsn is required for the %s driver", DriverMySQL)
		}
	case DriverMemory:
		if c.Store.Fixture == "" {
			return fmt.Errorf("store.fixture is required for the %s driver", DriverMemory)
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	if c.HTTP.RateLimit.Requests > 0 && c.HTTP.RateLimit.Window <= 0 {
		return fmt.Errorf("http.rate_limit.window must be positive")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", DriverMySQL)
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.query_timeout", "10s")
	v.SetDefault("http.port", "8081")
	v.SetDefault("http.rate_limit.window", "1m")
	v.SetDefault("auth.jwt_ttl", "1h")
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")
	v.BindEnv("mysql.query_timeout", "MYSQL_QUERY_TIMEOUT")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.rate_limit.requests", "HTTP_RATE_LIMIT_REQUESTS")
	v.BindEnv("http.rate_limit.window", "HTTP_RATE_LIMIT_WINDOW")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Statistics
	v.BindEnv("statistics.keep_unknown_buyers", "STATISTICS_KEEP_UNKNOWN_BUYERS")

	// Store
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.fixture", "STORE_FIXTURE")
}
