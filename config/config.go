/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel        = "KLV_LOG_LEVEL"
	EnvLogFormat       = "KLV_LOG_FORMAT"
	EnvLogOutput       = "KLV_LOG_OUTPUT"
	EnvLogDevelopment  = "KLV_LOG_DEVELOPMENT"
	EnvLogRotate       = "KLV_LOG_ROTATE"
	EnvDictionary      = "KLV_DICTIONARY"
	EnvDictionaryName  = "KLV_DICTIONARY_NAME"
	EnvAWSAccessKey    = "AWS_ACCESS_KEY"
	EnvAWSSecretKey    = "AWS_SECRET_KEY"
	EnvAWSRegion       = "AWS_REGION"
	EnvAWSDDBTableName = "AWS_DDB_TABLE"
)

// Config is the runtime configuration of the resolver tooling.
type Config struct {
	Log LogConfig
	// DictionaryPaths are YAML extension dictionaries merged into the defaults.
	DictionaryPaths []string
	// DictionaryName selects a dictionary stored in DynamoDB.
	DictionaryName string
	AWS            AWSConfig
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string
	Format      string   // "console" or "json"
	Outputs     []string // "stdout", "stderr" or file paths
	Development bool
	Rotation    RotationConfig
}

// RotationConfig configures lumberjack rotation for file outputs.
type RotationConfig struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// AWSConfig holds the credentials of the DynamoDB label store.
type AWSConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	TableName string
}

// Enabled reports whether a label store table is configured.
func (a AWSConfig) Enabled() bool {
	return a.TableName != ""
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				MaxSizeMB:  100,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
	}
}

// Load reads the given .env files (missing files are skipped) and then the
// process environment. Variables already set in the environment win over
// .env values.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := Default()
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvLogOutput); v != "" {
		cfg.Log.Outputs = splitList(v)
	}
	if v := os.Getenv(EnvLogDevelopment); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogDevelopment, err)
		}
		cfg.Log.Development = b
	}
	if v := os.Getenv(EnvLogRotate); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogRotate, err)
		}
		cfg.Log.Rotation.Enable = b
	}
	if v := os.Getenv(EnvDictionary); v != "" {
		cfg.DictionaryPaths = splitList(v)
	}
	cfg.DictionaryName = os.Getenv(EnvDictionaryName)
	cfg.AWS = AWSConfig{
		AccessKey: os.Getenv(EnvAWSAccessKey),
		SecretKey: os.Getenv(EnvAWSSecretKey),
		Region:    os.Getenv(EnvAWSRegion),
		TableName: os.Getenv(EnvAWSDDBTableName),
	}
	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
