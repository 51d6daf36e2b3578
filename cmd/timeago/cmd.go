package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goliatone/go-timeago"
	"github.com/goliatone/go-timeago/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options interface {
	Complete(c *cobra.Command, args []string) error
	Run(ctx *appContext) error
}

// globalFlags are shared by every command
type globalFlags struct {
	configPath string
	locale     string
	overrides  map[string]string
	now        string
	logLevel   string
}

func (f *globalFlags) register(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "path to the config file (default $HOME/.config/timeago/config.toml)")
	c.PersistentFlags().StringVarP(&f.locale, "locale", "l", "", "locale code, unsupported codes fall back to English")
	c.PersistentFlags().StringToStringVarP(&f.overrides, "override", "o", nil, "override a phrase, e.g. --override day=\"single day\"")
	c.PersistentFlags().StringVar(&f.now, "now", "", "reference time instead of the current time (RFC3339)")
	c.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

type appContext struct {
	Config    *config.Config
	Log       *logrus.Logger
	Registry  *timeago.Registry
	Formatter *timeago.Formatter
	Out       io.Writer
}

func build(c *cobra.Command, flags *globalFlags, opts options, extra ...timeago.Option) *cobra.Command {
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := opts.Complete(cmd, args)
		if err != nil {
			return fmt.Errorf("validate command args: %w", err)
		}

		ctx, err := loadContext(flags, cmd.OutOrStdout(), extra...)
		if err != nil {
			return err
		}

		return opts.Run(ctx)
	}
	return c
}

func loadContext(flags *globalFlags, out io.Writer, extra ...timeago.Option) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.Out = os.Stderr
	log.Level = level
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"}

	registry := timeago.NewBuiltinRegistry(timeago.WithRegistryLogger(log))
	for _, packCfg := range cfg.Packs {
		pack, err := timeago.NewFilePack(packCfg.Code, packCfg.Name, packCfg.Rules, packCfg.Phrases...)
		if err != nil {
			return nil, fmt.Errorf("load pack %q: %w", packCfg.Code, err)
		}
		if err := registry.Register(pack); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"locale": pack.Code, "rules": packCfg.Rules}).Debug("registered pack")
	}

	var clock timeago.Clock = timeago.SystemClock{}
	if flags.now != "" {
		now, err := time.Parse(time.RFC3339, flags.now)
		if err != nil {
			return nil, fmt.Errorf("parse --now: %w", err)
		}
		clock = timeago.FixedClock(now)
	}

	locale := cfg.Locale
	if flags.locale != "" {
		locale = flags.locale
	}

	opts := []timeago.Option{
		timeago.WithRegistry(registry),
		timeago.WithLogger(log),
		timeago.WithClock(clock),
		timeago.WithLocale(locale),
		timeago.WithOverrides(cfg.Overrides),
		timeago.WithOverrides(flags.overrides),
	}
	formatter, err := timeago.NewFormatter(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}

	if resolved := formatter.Locale(); resolved != locale {
		log.WithFields(logrus.Fields{"requested": locale, "resolved": resolved}).Info("locale resolved")
	}

	return &appContext{
		Config:    cfg,
		Log:       log,
		Registry:  registry,
		Formatter: formatter,
		Out:       out,
	}, nil
}
