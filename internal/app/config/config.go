package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	Catalog   Catalog    `mapstructure:",squash"`
	ML        ML         `mapstructure:",squash"`
	Optimizer Optimizer  `mapstructure:",squash"`
	RateLimit RateLimit  `mapstructure:",squash"`
}

type HTTP struct {
	Port               int           `mapstructure:"HTTP_PORT"`
	Timeout            time.Duration `mapstructure:"HTTP_TIMEOUT"`
	BasePath           string        `mapstructure:"HTTP_BASE_PATH"`
	CORSAllowedOrigins []string      `mapstructure:"HTTP_CORS_ALLOWED_ORIGINS"`
}

// Redis is optional, an empty address disables the redis model store and
// rate limiting.
type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

type Catalog struct {
	File string `mapstructure:"CATALOG_FILE"`
}

const (
	ModelStoreFile  = "file"
	ModelStoreRedis = "redis"
)

type ML struct {
	ModelStore       string `mapstructure:"ML_MODEL_STORE"`
	ModelPath        string `mapstructure:"ML_MODEL_PATH"`
	ModelKey         string `mapstructure:"ML_MODEL_KEY"`
	TrainSamples     int    `mapstructure:"ML_TRAIN_SAMPLES"`
	BootstrapSamples int    `mapstructure:"ML_BOOTSTRAP_SAMPLES"`
	Seed             uint64 `mapstructure:"ML_SEED"`
	WarmOnStart      bool   `mapstructure:"ML_WARM_ON_START"`
	RetrainSchedule  string `mapstructure:"ML_RETRAIN_SCHEDULE"`
}

type Optimizer struct {
	PenaltyNM           float64 `mapstructure:"OPTIMIZER_PENALTY_NM"`
	MaxConcurrentSolves int     `mapstructure:"OPTIMIZER_MAX_CONCURRENT_SOLVES"`
}

type RateLimit struct {
	RPS int `mapstructure:"RATE_LIMIT_RPS"`
}
