package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the root configuration of the seedops server
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Log    LogConfig    `mapstructure:"log"`
	Jaeger JaegerConfig `mapstructure:"jaeger"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ListenConfig `mapstructure:"http"`
}

// ListenConfig ...
type ListenConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// String ...
func (c ListenConfig) String() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ListenString for net.Listen / http.Server
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`
	Mode  string `mapstructure:"mode"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// CacheConfig ...
type CacheConfig struct {
	GuideCacheSize int `mapstructure:"guide_cache_size"`
	GuideCacheTTL  int `mapstructure:"guide_cache_ttl"`
}

func loadConfigFrom(file string) Config {
	vip := viper.New()
	vip.SetConfigFile(file)
	vip.SetEnvPrefix("seedops")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load reads config.yml from the working directory
func Load() Config {
	return loadConfigFrom("config.yml")
}

// LoadTestConfig reads config_test.yml from the repository root
func LoadTestConfig(rootDir string) Config {
	return loadConfigFrom(path.Join(rootDir, "config_test.yml"))
}

// NewLogger builds the process logger from log config
func NewLogger(conf LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		err := level.Set(conf.Level)
		if err != nil {
			panic(err)
		}
	}

	var zapConf zap.Config
	if conf.Mode == "development" {
		zapConf = zap.NewDevelopmentConfig()
	} else {
		zapConf = zap.NewProductionConfig()
	}
	zapConf.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConf.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
