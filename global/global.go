package global

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	GLog     = zap.NewNop()
	G_Viper  *viper.Viper
	G_Config Config
)

type Config struct {
	Profile Profile `mapstructure:"profile"`
	Log     Log     `mapstructure:"log"`
}

// Profile lists modifier names in wrap order, innermost first.
type Profile struct {
	Features []string `mapstructure:"features"`
}

type Log struct {
	Dir        string `mapstructure:"dir"`
	Level      string `mapstructure:"level"`
	MaxSize    int    `mapstructure:"max-size"`
	MaxBackups int    `mapstructure:"max-backups"`
	MaxAge     int    `mapstructure:"max-age"`
	Compress   bool   `mapstructure:"compress"`
}
