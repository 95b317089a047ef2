// Package config loads application configuration via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	config *Config
	path   string
	mu     sync.Mutex
	v      = viper.New()
)

// Config represents the configuration implementation.
type Config struct {
	AppName     string
	Environment string
	Host        string
	Port        int
	Logger      *Logger
	Data        *Data
	AI          *AI
	Viper       *viper.Viper
}

// IsProd reports whether the app runs in production mode.
func (c *Config) IsProd() bool {
	return c.Environment == "production"
}

// LoadConfig loads the configuration from the file.
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath("/etc/speakdo")
		v.AddConfigPath("$HOME/.speakdo")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	v.SetEnvPrefix("speakdo")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		AppName:     v.GetString("app_name"),
		Environment: v.GetString("environment"),
		Host:        v.GetString("server.host"),
		Port:        v.GetInt("server.port"),
		Logger:      getLoggerConfig(v),
		Data:        getDataConfig(v),
		AI:          getAIConfig(v),
		Viper:       v,
	}

	path = configPath
	config = cfg
	return cfg, nil
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	newConfig, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config = newConfig
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
func Watch(callback func(*Config)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := Reload(); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
			return
		}
		callback(config)
	})
}
