package core

import (
	"errors"

	"go.uber.org/zap"

	"profile_decorator/decorator_mode"
	"profile_decorator/global"
	"profile_decorator/observer_mode"
)

// BuildProfile wraps a basic profile with the named modifiers in order.
func BuildProfile(names []string) (decorator_mode.Profile, error) {
	modifiers, err := decorator_mode.ModifiersByName(names)
	if err != nil {
		return nil, err
	}
	profile := decorator_mode.Chain(decorator_mode.BasicProfile{}, modifiers...)
	global.GLog.Debug("profile built", zap.Strings("modifiers", names), zap.Int("cost", profile.Cost()))
	return profile, nil
}

// Reload rebuilds the configured profile and pushes it to sub. With no
// features configured the showcase profiles are pushed instead. A changed
// log section swaps global.GLog for a logger built from it. A config naming
// an unknown modifier or a bad log section is logged and skipped.
func Reload(cfg global.Config, sub observer_mode.Subject) error {
	var profiles []decorator_mode.Profile
	if len(cfg.Profile.Features) == 0 {
		profiles = decorator_mode.Showcase()
	} else {
		profile, err := BuildProfile(cfg.Profile.Features)
		if err != nil {
			global.GLog.Warn("ignoring config", zap.Error(err))
			return err
		}
		profiles = []decorator_mode.Profile{profile}
	}

	if cfg.Log != global.G_Config.Log {
		logger, err := Zap(cfg.Log)
		if err != nil {
			global.GLog.Warn("ignoring config", zap.Error(err))
			return err
		}
		global.GLog = logger
	}
	global.G_Config = cfg

	var errs []error
	for _, profile := range profiles {
		if err := sub.NotifyObjects(profile); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
