package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	AppHost string        `mapstructure:"host"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
}

type DBConfig struct {
	Source        string `mapstructure:"source"`
	RunMigrations bool   `mapstructure:"run_migrations"`
}

type JWTConfig struct {
	Secret                   string `mapstructure:"secret"`
	Algorithm                string `mapstructure:"algorithm"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
}

// AccessTokenTTL is the lifetime of both the issued token and its session entry.
func (c JWTConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type StorageConfig struct {
	Driver string            `mapstructure:"driver"`
	Bucket string            `mapstructure:"bucket"`
	Path   string            `mapstructure:"path"`
	S3     ObjectStoreConfig `mapstructure:"s3"`
}

// ObjectStoreConfig covers both the AWS SDK and MinIO drivers.
type ObjectStoreConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	Region       string `mapstructure:"region"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	StorageDriverS3    = "s3"
	StorageDriverMinio = "minio"
	StorageDriverLocal = "local"
)

// Every key needs a default, otherwise viper ignores its environment override
// during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "localhost:8080")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.request_timeout", 60*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("db.source", "")
	v.SetDefault("db.run_migrations", true)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.access_token_expire_minutes", 30)
	v.SetDefault("cache.capacity", 1000)
	v.SetDefault("storage.driver", StorageDriverS3)
	v.SetDefault("storage.bucket", "files")
	v.SetDefault("storage.path", "./data")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.access_key", "")
	v.SetDefault("storage.s3.secret_key", "")
	v.SetDefault("storage.s3.use_path_style", true)
	v.SetDefault("log.level", "info")
}

func Load() (*Config, error) {
	return load(viper.New(), "./configs", "/configs")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("settings")
	v.SetConfigType("yml")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must be set")
	}
	if c.JWT.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("jwt.access_token_expire_minutes must be positive, got %d", c.JWT.AccessTokenExpireMinutes)
	}
	switch c.Storage.Driver {
	case StorageDriverS3, StorageDriverMinio:
		if c.Storage.Bucket == "" {
			return errors.New("storage.bucket must be set")
		}
	case StorageDriverLocal:
		if c.Storage.Path == "" {
			return errors.New("storage.path must be set for the local driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	return nil
}
