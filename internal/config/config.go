package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `yaml:"api" mapstructure:"api"`
	Gin      *GinConfig      `yaml:"gin" mapstructure:"gin"`
	Postgres *PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
	Stripe   *StripeConfig   `yaml:"stripe" mapstructure:"stripe"`
}

type APIConfig struct {
	Environment        string   `yaml:"environment" mapstructure:"environment"`
	BaseURL            string   `yaml:"base_url" mapstructure:"base_url"`
	Port               string   `yaml:"port" mapstructure:"port"`
	JWTSigningKey      string   `yaml:"jwt_signing_key" mapstructure:"jwt_signing_key"`
	EncryptionKey      string   `yaml:"encryption_key" mapstructure:"encryption_key"`
	AllowedCORSDomains []string `yaml:"allowed_cors_domains" mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `yaml:"mode" mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     string `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       string `yaml:"db" mapstructure:"db"`
}

type StripeConfig struct {
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	config := &AppConfig{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return config, nil
}

// Watch re-reads the config file on change. Values picked up at request
// time (CORS domains, stripe key) refresh without a restart.
func Watch(config *AppConfig) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := viper.Unmarshal(config); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})
	viper.WatchConfig()
}
