package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Content   ContentConfig   `mapstructure:"content"`
	Session   SessionConfig   `mapstructure:"session"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// ContentConfig 学习资料来源配置，默认读本地目录，也支持MinIO桶
type ContentConfig struct {
	Source        string `mapstructure:"source"` // local | minio
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
}

// SessionConfig 匿名会话配置，学习进度只在会话令牌有效期内保留
type SessionConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
	Store      string        `mapstructure:"store"` // memory | redis
	CookieName string        `mapstructure:"cookie_name"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("AI900")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Content
	viper.BindEnv("content.source", "CONTENT_SOURCE")
	viper.BindEnv("content.local_path", "CONTENT_LOCAL_PATH")
	viper.BindEnv("content.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("content.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("content.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("content.minio_bucket", "MINIO_BUCKET")

	// Session
	viper.BindEnv("session.secret", "SESSION_SECRET")
	viper.BindEnv("session.store", "SESSION_STORE")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("content.source", "local")
	viper.SetDefault("content.local_path", "study-files")
	viper.SetDefault("session.store", "memory")
	viper.SetDefault("session.cookie_name", "study_session")
	viper.SetDefault("session.expire_hours", 720)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Session.ExpireTime = cfg.Session.ExpireTime * time.Hour

	// 生产环境校验会话密钥强度
	if cfg.Server.Mode == "release" && len(cfg.Session.Secret) < 32 {
		return nil, fmt.Errorf("session secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.Session.Secret))
	}

	// 学习资料目录整个缺失属于致命错误，单个文件缺失只降级对应板块
	if cfg.Content.Source == "local" {
		if _, err := os.Stat(cfg.Content.LocalPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("content directory %q does not exist", cfg.Content.LocalPath)
		}
	}

	return &cfg, nil
}
