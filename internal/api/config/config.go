package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// EnvPrefix 环境变量前缀，例如 NETFLIX_DATABASE_DSN
const EnvPrefix = "NETFLIX"

// LoadConfig 从文件与环境变量加载配置并填充到 Cfg
func LoadConfig() error {
	// .env 可选
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.trusted_proxies", []string{"localhost"})
	v.SetDefault("server.shutdown_timeout", 5)
	// 无默认值的键也需要注册，AutomaticEnv 才能在 Unmarshal 时读到环境变量
	for _, key := range []string{
		"database.dsn", "redis.addr", "redis.password",
		"minio.internal_endpoint", "minio.external_endpoint", "minio.access_key",
		"minio.secret_key", "minio.main_bucket", "jwt.secret", "log.file",
	} {
		v.SetDefault(key, "")
	}
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_idle", 10)
	v.SetDefault("database.max_open", 100)
	v.SetDefault("database.max_lifetime", 60)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("minio.presign_expiry", 3600)
	v.SetDefault("minio.max_image_width", 1280)
	v.SetDefault("jwt.issuer", "Netflix144p")
	v.SetDefault("jwt.expiration", 24)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("catalog.index_banner_limit", 0)
	v.SetDefault("catalog.recommendation_limit", 0)
	v.SetDefault("catalog.default_page_size", 12)
	v.SetDefault("catalog.max_page_size", 100)
	v.SetDefault("job.media_cleanup_spec", "0 0 * * * *")
	v.SetDefault("job.media_temp_ttl", 24)
}

// Default 返回仅包含默认值的配置，测试与本地工具使用
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}
