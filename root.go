package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"profile_decorator/codec"
	"profile_decorator/core"
	"profile_decorator/decorator_mode"
	"profile_decorator/global"
	"profile_decorator/observer_mode"
)

type rootOptions struct {
	cfgFile string
	with    []string
	format  string
	watch   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "profile_decorator",
		Short: "Compose user profiles from add-on features",
		Long: `Builds a basic user profile wrapped with optional add-on features
(photo sharing, story sharing, live streaming) and prints the resulting
feature list and cost.

Without --with and without profile.features in the config file, the four
demo profiles are printed.`,
		Example: `  profile_decorator
  profile_decorator --with photo,story,live
  profile_decorator --config config.yaml --format json --watch`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./config.yaml)")
	cmd.Flags().StringSliceVar(&opts.with, "with", nil, "modifiers to apply in order: photo, story, live")
	cmd.Flags().StringVar(&opts.format, "format", string(codec.TextType), "output format: text, json")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "re-print the configured profile whenever the config file changes")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *rootOptions) error {
	v, cfg, err := core.Viper(opts.cfgFile)
	if err != nil {
		return err
	}
	global.G_Viper = v
	global.G_Config = cfg

	logger, err := core.Zap(cfg.Log)
	if err != nil {
		return err
	}
	global.GLog = logger
	defer func() { _ = logger.Sync() }()

	out := cmd.OutOrStdout()
	c, err := codec.NewCodec(codec.Type(opts.format), out)
	if err != nil {
		return err
	}

	if opts.watch {
		if len(opts.with) > 0 {
			return errors.New("--with and --watch are mutually exclusive")
		}
		if v.ConfigFileUsed() == "" {
			return errors.New("--watch needs a config file")
		}
		return watch(ctx, c)
	}

	names := opts.with
	if len(names) == 0 {
		names = cfg.Profile.Features
	}
	if len(names) == 0 {
		return printShowcase(c)
	}

	profile, err := core.BuildProfile(names)
	if err != nil {
		return err
	}
	global.GLog.Info("profile printed", zap.Strings("modifiers", names))
	return c.Write(profile)
}

func printShowcase(c codec.Codec) error {
	for _, profile := range decorator_mode.Showcase() {
		if err := c.Write(profile); err != nil {
			return err
		}
	}
	return nil
}

func watch(ctx context.Context, c codec.Codec) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub := &observer_mode.RealSubject{}
	sub.AddObject(&observer_mode.CodecObject{Codec: c})
	sub.AddObject(&observer_mode.LogObject{})

	if err := core.Reload(global.G_Config, sub); err != nil {
		return err
	}
	core.Watch(global.G_Viper, func(cfg global.Config) {
		if err := core.Reload(cfg, sub); err != nil {
			global.GLog.Error("reload failed", zap.Error(err))
		}
	})

	<-ctx.Done()
	return nil
}
