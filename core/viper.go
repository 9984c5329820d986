package core

import (
	"errors"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"profile_decorator/global"
)

func setDefaults(config *viper.Viper) {
	config.SetDefault("profile.features", []string{})
	config.SetDefault("log.dir", "./Log")
	config.SetDefault("log.level", "info")
	config.SetDefault("log.max-size", 1)
	config.SetDefault("log.max-backups", 1)
	config.SetDefault("log.max-age", 1)
	config.SetDefault("log.compress", false)
}

// Viper reads the config from path, or from ./config.yaml when path is
// empty. Only the implicit file may be missing.
func Viper(path string) (*viper.Viper, global.Config, error) {
	config := viper.New()
	setDefaults(config)
	if path != "" {
		config.SetConfigFile(path)
	} else {
		config.SetConfigName("config")
		config.AddConfigPath("./")
		config.SetConfigType("yaml")
	}

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, global.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg global.Config
	if err := config.Unmarshal(&cfg); err != nil {
		return nil, global.Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return config, cfg, nil
}

// Watch calls onChange with the re-read config every time the file changes.
func Watch(config *viper.Viper, onChange func(global.Config)) {
	config.OnConfigChange(func(e fsnotify.Event) {
		global.GLog.Debug("config changed", zap.String("file", e.Name), zap.String("op", e.Op.String()))
		var cfg global.Config
		if err := config.Unmarshal(&cfg); err != nil {
			global.GLog.Error("unable to unmarshal config", zap.Error(err))
			return
		}
		onChange(cfg)
	})
	config.WatchConfig()
}
