package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type App struct {
	ServerHost  string        `mapstructure:"server_host"`
	ServerPort  string        `mapstructure:"server_port"`
	DBPath      string        `mapstructure:"db_path"`
	StateDir    string        `mapstructure:"state_dir"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	ChromePath  string        `mapstructure:"chrome_path"`
	ChromeShown bool          `mapstructure:"chrome_shown"`
}

// Load reads configuration from an optional file plus environment variables.
// Environment variables win; a missing file is not an error.
func Load(path string) (*App, error) {
	v := viper.New()

	v.SetDefault("server_host", "127.0.0.1")
	v.SetDefault("server_port", "8080")
	v.SetDefault("db_path", "taqrir.db")
	v.SetDefault("state_dir", ".taqrir")
	v.SetDefault("token_ttl", 24*time.Hour)

	v.AutomaticEnv()
	for _, key := range []string{
		"server_host", "server_port", "db_path", "state_dir",
		"jwt_secret", "token_ttl", "chrome_path", "chrome_shown",
	} {
		_ = v.BindEnv(key)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var app App
	if err := v.Unmarshal(&app); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if app.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	return &app, nil
}
