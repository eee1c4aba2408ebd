package config

// Config 配置主体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Job     JobConfig     `mapstructure:"job"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	Mode            string   `mapstructure:"mode"`
	TrustedProxies  []string `mapstructure:"trusted_proxies"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	MainBucket       string `mapstructure:"main_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	UsePublicLink    bool   `mapstructure:"use_public_link"`
	PresignExpiry    int    `mapstructure:"presign_expiry"`
	MaxImageWidth    int    `mapstructure:"max_image_width"`
}

// JWTConfig 令牌配置
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Issuer     string `mapstructure:"issuer"`
	Expiration int    `mapstructure:"expiration"`
}

// LogConfig 日志配置，File 为空时只输出到 stdout
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// CatalogConfig 目录聚合参数
type CatalogConfig struct {
	IndexBannerLimit    int `mapstructure:"index_banner_limit"`
	RecommendationLimit int `mapstructure:"recommendation_limit"`
	DefaultPageSize     int `mapstructure:"default_page_size"`
	MaxPageSize         int `mapstructure:"max_page_size"`
}

// JobConfig 定时任务配置，MediaCleanupSpec 为空时不启用清理
type JobConfig struct {
	MediaCleanupSpec string `mapstructure:"media_cleanup_spec"`
	MediaTempTTL     int    `mapstructure:"media_temp_ttl"`
}
