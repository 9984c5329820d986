package observer_mode

import (
	"go.uber.org/zap"

	"profile_decorator/codec"
	"profile_decorator/decorator_mode"
	"profile_decorator/global"
)

type Object interface {
	Update(profile decorator_mode.Profile) error
}

// 观察者实例

// CodecObject writes every pushed profile through its codec.
type CodecObject struct {
	Codec codec.Codec
}

func (obj *CodecObject) Update(profile decorator_mode.Profile) error {
	return obj.Codec.Write(profile)
}

// LogObject logs every pushed profile. A nil Log follows global.GLog, so
// the object keeps logging after a config reload swaps the logger.
type LogObject struct {
	Log *zap.Logger
}

func (obj *LogObject) Update(profile decorator_mode.Profile) error {
	logger := obj.Log
	if logger == nil {
		logger = global.GLog
	}
	logger.Info("profile updated",
		zap.String("features", profile.Features()),
		zap.Int("cost", profile.Cost()))
	return nil
}
