/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads entityconv settings from a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/suparena/entityconv/errors"
)

// Environment variable names.
const (
	EnvLogLevel     = "ENTITYCONV_LOG_LEVEL"
	EnvLogFormat    = "ENTITYCONV_LOG_FORMAT"
	EnvTypeDefs     = "ENTITYCONV_TYPEDEFS"
	EnvAWSAccessKey = "AWS_ACCESS_KEY"
	EnvAWSSecretKey = "AWS_SECRET_KEY"
	EnvAWSRegion    = "AWS_REGION"
	EnvAWSDDBTable  = "AWS_DDB_TABLE"
)

// Config holds runtime settings.
type Config struct {
	LogLevel     string
	LogFormat    string
	TypeDefsPath string
	AWS          AWSConfig
}

// AWSConfig holds the DynamoDB store settings.
type AWSConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	TableName string
}

// Load reads the optional .env files, then the environment. A missing .env
// file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		LogLevel:     getenv(EnvLogLevel, "info"),
		LogFormat:    getenv(EnvLogFormat, "text"),
		TypeDefsPath: os.Getenv(EnvTypeDefs),
		AWS: AWSConfig{
			AccessKey: os.Getenv(EnvAWSAccessKey),
			SecretKey: os.Getenv(EnvAWSSecretKey),
			Region:    os.Getenv(EnvAWSRegion),
			TableName: os.Getenv(EnvAWSDDBTable),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log settings.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.NewValidationError(EnvLogLevel, err.Error())
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return errors.NewValidationError(EnvLogFormat, fmt.Sprintf("unsupported log format %q", c.LogFormat))
	}
	return nil
}

// NewLogger builds a logrus logger from the log settings.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.NewValidationError(EnvLogLevel, err.Error())
	}
	log := logrus.New()
	log.SetLevel(level)
	if strings.ToLower(c.LogFormat) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stderr)
	return log, nil
}

// HasStore reports whether a DynamoDB table is configured.
func (c *Config) HasStore() bool {
	return c.AWS.TableName != ""
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
