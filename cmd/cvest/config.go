// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	flagFormat    = "format"
	flagNA        = "na"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	envPrefix = "CVEST"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	logFormatText = "text"
	logFormatJSON = "json"
)

var (
	validate = validator.New()

	defaultNA = []string{"NA", "N/A", "NaN", "null", ""}
)

// Config holds the settings of a single cvest run.
type Config struct {
	Format    string   `mapstructure:"format" validate:"oneof=text json yaml"`
	NA        []string `mapstructure:"na"`
	LogLevel  string   `mapstructure:"log-level" validate:"required"`
	LogFormat string   `mapstructure:"log-format" validate:"oneof=text json"`
}

func addFlags(fs *pflag.FlagSet) {
	fs.String(flagFormat, formatText, "output format (text|json|yaml)")
	fs.StringSlice(flagNA, defaultNA, "tokens that mark a missing observation")
	fs.String(flagLogLevel, zerolog.InfoLevel.String(), "logging level")
	fs.String(flagLogFormat, logFormatText, "logging format (text|json)")
}

// loadConfig reads the flags in fs, letting CVEST_* environment
// variables override flags that were not set explicitly.
func loadConfig(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger returns the logger described by cfg, writing to w.
func newLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	var logWriter io.Writer
	switch cfg.LogFormat {
	case logFormatJSON:
		logWriter = w

	case logFormatText:
		logWriter = zerolog.ConsoleWriter{Out: w, NoColor: true}

	default:
		return zerolog.Nop(), fmt.Errorf("invalid logging format: %s", cfg.LogFormat)
	}

	return zerolog.New(logWriter).Level(lvl).With().Timestamp().Logger(), nil
}
