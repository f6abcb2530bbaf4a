package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Auth      AuthConfig      `yaml:"auth"      validate:"required"`
	Map       MapConfig       `yaml:"map"       validate:"required"`
	Filter    FilterConfig    `yaml:"filter"    validate:"required"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"citymap"      validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SchedulerConfig controls how often expired sessions are purged.
type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1h" validate:"required,gt=0"`
}

// TelegramConfig enables announcements of new events. Both fields are needed.
type TelegramConfig struct {
	BotToken  string `yaml:"bot_token"  env:"TELEGRAM_BOT_TOKEN"  env-default:""`
	ChannelID int64  `yaml:"channel_id" env:"TELEGRAM_CHANNEL_ID" env-default:"0"`
}

// TracingConfig points the span exporter at an OTLP gRPC collector.
// Tracing stays off while OTLPAddr is empty.
type TracingConfig struct {
	OTLPAddr    string `yaml:"otlp_addr"    env:"TRACING_OTLP_ADDR"    env-default:""`
	ServiceName string `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"citymap"`
}

type AuthConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl" env:"AUTH_SESSION_TTL" env-default:"168h" validate:"gt=0"`
}

type MapConfig struct {
	CenterLat  float64 `yaml:"center_lat"  env:"MAP_CENTER_LAT"  env-default:"58.3806" validate:"gte=-90,lte=90"`
	CenterLng  float64 `yaml:"center_lng"  env:"MAP_CENTER_LNG"  env-default:"26.7251" validate:"gte=-180,lte=180"`
	Zoom       int     `yaml:"zoom"        env:"MAP_ZOOM"        env-default:"13"      validate:"min=1,max=20"`
	SelectZoom int     `yaml:"select_zoom" env:"MAP_SELECT_ZOOM" env-default:"15"      validate:"min=1,max=20"`
}

// FilterConfig sets how date ranges are resolved. Timezone decides where
// "today" starts; BoundedWindows caps week and month at the same distance
// ahead of now instead of leaving them open-ended.
type FilterConfig struct {
	Timezone       string `yaml:"timezone"        env:"FILTER_TIMEZONE"        env-default:"Europe/Tallinn" validate:"required"`
	BoundedWindows bool   `yaml:"bounded_windows" env:"FILTER_BOUNDED_WINDOWS" env-default:"false"`
}

func (f FilterConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", f.Timezone, err)
	}
	return loc, nil
}

// MustLoad reads the file named by --config or CONFIG_PATH, then applies
// environment overrides and defaults.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadFile(path string) (*Config, error) {
	var cfg Config
	if err := cleanenvport.LoadPath(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
