// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/christman-ai/stamper/header"
	"github.com/christman-ai/stamper/walker"
)

// Config holds the configuration of both binaries, each reading its own section
type Config struct {
	Stamper StamperConfig `json:"stamper" yaml:"stamper"`
	Backend BackendConfig `json:"backend" yaml:"backend"`
}

type StamperConfig struct {
	Root         string   `json:"root" yaml:"root" validate:"required"`
	Extensions   []string `json:"extensions" yaml:"extensions" validate:"min=1,dive,startswith=."`
	ExcludedDirs []string `json:"excludedDirs" yaml:"excludedDirs" validate:"dive,required"`
	HeaderFile   string   `json:"headerFile" yaml:"headerFile"`
	Marker       string   `json:"marker" yaml:"marker"`
	DryRun       bool     `json:"dryRun" yaml:"dryRun"`
	Confirm      bool     `json:"confirm" yaml:"confirm"`
	ReportFile   string   `json:"reportFile" yaml:"reportFile" validate:"omitempty,endswith=.yaml|endswith=.yml|endswith=.json"`
	MetricsSink  string   `json:"metricsSink" yaml:"metricsSink" validate:"oneof=datadog noop"`
	TracerSink   string   `json:"tracerSink" yaml:"tracerSink" validate:"oneof=datadog noop"`
}

type BackendConfig struct {
	BindAddr         string        `json:"bindAddr" yaml:"bindAddr" validate:"required,hostname_port"`
	Message          string        `json:"message" yaml:"message" validate:"required"`
	ShutdownTimeout  time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout" validate:"gt=0"`
	MetricsSink      string        `json:"metricsSink" yaml:"metricsSink" validate:"oneof=datadog noop"`
	TracerSink       string        `json:"tracerSink" yaml:"tracerSink" validate:"oneof=datadog noop"`
	TracerSampleRate float64       `json:"tracerSampleRate" yaml:"tracerSampleRate" validate:"gte=0,lte=1"`
	ProfilerSink     string        `json:"profilerSink" yaml:"profilerSink" validate:"oneof=datadog noop"`
}

const (
	DefaultBackendBindAddr        = ":8000"
	DefaultBackendMessage         = "TraumaHealer backend live"
	DefaultBackendShutdownTimeout = 10 * time.Second

	// DefaultStamperConfigName is looked up in the home directory when no --config is given
	DefaultStamperConfigName = ".stamper"
)

var validate = validator.New()

// AddStamperFlags registers the stamper flags on fs, storing their values in cfg, and binds them into v
func AddStamperFlags(fs *pflag.FlagSet, cfg *StamperConfig, v *viper.Viper) error {
	fs.StringVar(&cfg.Root, "root", ".", "Directory to walk")
	fs.StringSliceVar(&cfg.Extensions, "extensions", walker.DefaultExtensions, "File extensions to stamp")
	fs.StringSliceVar(&cfg.ExcludedDirs, "exclude", walker.DefaultExcludedDirs, "Directory names (or glob patterns) skipped at any depth")
	fs.StringVar(&cfg.HeaderFile, "header-file", "", "File containing the header text (defaults to the built-in header)")
	fs.StringVar(&cfg.Marker, "marker", header.DefaultMarker, "Substring identifying an already stamped file; must appear in the header text")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Print a diff of the changes instead of writing files")
	fs.BoolVar(&cfg.Confirm, "confirm", false, "Preview the changes and ask for confirmation before writing")
	fs.StringVar(&cfg.ReportFile, "report-file", "", "Write a YAML or JSON run report to this path")
	fs.StringVar(&cfg.MetricsSink, "metrics-sink", "noop", "Metrics sink (datadog, noop)")
	fs.StringVar(&cfg.TracerSink, "tracer-sink", "noop", "Tracer sink (datadog, noop)")

	return bindFlags(fs, v, map[string]string{
		"stamper.root":         "root",
		"stamper.extensions":   "extensions",
		"stamper.excludedDirs": "exclude",
		"stamper.headerFile":   "header-file",
		"stamper.marker":       "marker",
		"stamper.dryRun":       "dry-run",
		"stamper.confirm":      "confirm",
		"stamper.reportFile":   "report-file",
		"stamper.metricsSink":  "metrics-sink",
		"stamper.tracerSink":   "tracer-sink",
	})
}

// LoadStamper merges the configuration file and the environment into the already parsed flags.
// Without an explicit path, $HOME/.stamper.yaml is used when it exists.
func LoadStamper(logger *zap.SugaredLogger, v *viper.Viper, configPath string, cfg *StamperConfig) error {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			logger.Debugw("unable to find home directory, skipping default configuration file", "error", err)
		} else {
			v.AddConfigPath(home)
			v.SetConfigName(DefaultStamperConfigName)
		}
	}

	setupEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error loading configuration file: %w", err)
		}
	} else {
		logger.Infow("loaded configuration file", "config", v.ConfigFileUsed())
	}

	var all Config
	all.Stamper = *cfg

	if err := v.Unmarshal(&all); err != nil {
		return fmt.Errorf("error unmarshaling configuration: %w", err)
	}

	if err := validate.Struct(all.Stamper); err != nil {
		return fmt.Errorf("invalid stamper configuration: %w", err)
	}

	*cfg = all.Stamper

	return nil
}

// NewBackend parses the backend flags and optional configuration file. Flags take
// precedence over the configuration file, which takes precedence over defaults.
func NewBackend(logger *zap.SugaredLogger, osArgs []string) (BackendConfig, *viper.Viper, error) {
	var (
		configPath string
		cfg        Config
	)

	v := viper.New()
	preConfigFS := pflag.NewFlagSet("pre-config", pflag.ContinueOnError)
	mainFS := pflag.NewFlagSet("main-config", pflag.ContinueOnError)

	preConfigFS.ParseErrorsWhitelist.UnknownFlags = true
	preConfigFS.StringVar(&configPath, "config", "", "Configuration file path")
	// redefined on the main flag set so unknown flags are still rejected there
	mainFS.StringVar(&configPath, "config", "", "Configuration file path")

	mainFS.StringVar(&cfg.Backend.BindAddr, "bind-address", DefaultBackendBindAddr, "The address the web service binds to.")
	mainFS.StringVar(&cfg.Backend.Message, "message", DefaultBackendMessage, "The greeting returned by the root route.")
	mainFS.DurationVar(&cfg.Backend.ShutdownTimeout, "shutdown-timeout", DefaultBackendShutdownTimeout, "How long in-flight requests are given to complete on shutdown.")
	mainFS.StringVar(&cfg.Backend.MetricsSink, "metrics-sink", "noop", "Metrics sink (datadog, noop)")
	mainFS.StringVar(&cfg.Backend.TracerSink, "tracer-sink", "noop", "Tracer sink (datadog, noop)")
	mainFS.Float64Var(&cfg.Backend.TracerSampleRate, "tracer-sample-rate", 1, "Tracer sample rate between 0 and 1")
	mainFS.StringVar(&cfg.Backend.ProfilerSink, "profiler-sink", "noop", "Profiler sink (datadog, noop)")

	if err := bindFlags(mainFS, v, map[string]string{
		"backend.bindAddr":         "bind-address",
		"backend.message":          "message",
		"backend.shutdownTimeout":  "shutdown-timeout",
		"backend.metricsSink":      "metrics-sink",
		"backend.tracerSink":       "tracer-sink",
		"backend.tracerSampleRate": "tracer-sample-rate",
		"backend.profilerSink":     "profiler-sink",
	}); err != nil {
		return cfg.Backend, nil, err
	}

	if err := preConfigFS.Parse(osArgs); err != nil {
		return cfg.Backend, nil, fmt.Errorf("unable to retrieve configuration parse from provided flag: %w", err)
	}

	setupEnv(v)

	if configPath != "" {
		logger.Infow("loading configuration file", "config", configPath)

		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return cfg.Backend, nil, fmt.Errorf("error loading configuration file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg.Backend, nil, fmt.Errorf("error unmarshaling configuration: %w", err)
	}

	// now that configuration file has been loaded, parse all remaining flags
	if err := mainFS.Parse(osArgs); err != nil {
		return cfg.Backend, nil, fmt.Errorf("unable to parse main flags: %w", err)
	}

	if err := validate.Struct(cfg.Backend); err != nil {
		return cfg.Backend, nil, fmt.Errorf("invalid backend configuration: %w", err)
	}

	return cfg.Backend, v, nil
}

// WatchBackend calls onChange with the reloaded backend configuration every time the
// configuration file changes. Invalid configurations are logged and ignored.
func WatchBackend(logger *zap.SugaredLogger, v *viper.Viper, onChange func(BackendConfig)) {
	if v.ConfigFileUsed() == "" {
		return
	}

	v.OnConfigChange(func(in fsnotify.Event) {
		logger.Infow("configuration has changed, reloading", "event", in.String())

		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			logger.Errorw("error unmarshaling reloaded configuration", "error", err)
			return
		}

		if err := validate.Struct(cfg.Backend); err != nil {
			logger.Errorw("reloaded configuration is invalid, keeping the previous one", "error", err)
			return
		}

		onChange(cfg.Backend)
	})
	v.WatchConfig()
}

func bindFlags(fs *pflag.FlagSet, v *viper.Viper, keys map[string]string) error {
	for key, flag := range keys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}

	return nil
}

// setupEnv lets STAMPER_DRYRUN or BACKEND_BINDADDR override nested keys
func setupEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}
