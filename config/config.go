package config

import (
	"fmt"
	"github.com/spf13/viper"
	"path"
	"strings"
)

// Config is the root configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Log    LogConfig    `mapstructure:"log"`
	Jaeger JaegerConfig `mapstructure:"jaeger"`
	Engine EngineConfig `mapstructure:"engine"`
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

// ListenString ...
func (c ListenConfig) ListenString() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Endpoint     string  `mapstructure:"endpoint"`
	SamplerRatio float64 `mapstructure:"sampler_ratio"`
}

// Load reads config.yml from the working directory
func Load() Config {
	return loadConfig(".", "config")
}

// LoadTestConfig reads config_test.yml from the repo root, for integration tests
func LoadTestConfig(rootDir string) Config {
	return loadConfig(rootDir, "config_test")
}

func loadConfig(dir string, name string) Config {
	vip := viper.New()
	vip.SetConfigName(name)
	vip.SetConfigType("yml")
	vip.AddConfigPath(path.Join(dir))

	vip.SetEnvPrefix("spinwheel")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	setEngineDefaults(vip)

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
