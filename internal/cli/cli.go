/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package cli implements the entityconv command line.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/suparena/entityconv/converters"
)

// Options are the parsed command line arguments.
type Options struct {
	TypeDefsPath string
	TypeName     string
	Direction    converters.Direction
	InputPath    string
	Entity       bool
	StoreKey     string
	ShowVersion  bool
}

// ParseArgs parses command line arguments. defaultTypeDefs is used when --typedefs is not given.
func ParseArgs(args []string, defaultTypeDefs string) (*Options, error) {
	opts := &Options{}
	var direction string

	fs := pflag.NewFlagSet("entityconv", pflag.ContinueOnError)
	fs.StringVarP(&opts.TypeDefsPath, "typedefs", "t", defaultTypeDefs, "YAML type definitions file")
	fs.StringVarP(&opts.TypeName, "type", "n", "", "type name of the input value")
	fs.StringVarP(&direction, "direction", "d", "v1tov2", "conversion direction: v1tov2 or v2tov1")
	fs.StringVarP(&opts.InputPath, "input", "i", "", "input JSON file (default stdin)")
	fs.BoolVar(&opts.Entity, "entity", false, "treat the input as a whole entity with traits")
	fs.StringVar(&opts.StoreKey, "store-key", "", "store the converted V2 struct under this key")
	fs.BoolVarP(&opts.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.ShowVersion {
		return opts, nil
	}

	if strings.TrimSpace(opts.TypeDefsPath) == "" {
		return nil, fmt.Errorf("--typedefs is required")
	}
	switch strings.ToLower(direction) {
	case "v1tov2":
		opts.Direction = converters.V1ToV2
	case "v2tov1":
		opts.Direction = converters.V2ToV1
	default:
		return nil, fmt.Errorf("--direction must be v1tov2 or v2tov1, got %q", direction)
	}
	if !opts.Entity && strings.TrimSpace(opts.TypeName) == "" {
		return nil, fmt.Errorf("--type is required")
	}
	if opts.StoreKey != "" && (opts.Entity || opts.Direction != converters.V1ToV2) {
		return nil, fmt.Errorf("--store-key only applies to v1tov2 struct conversion")
	}
	return opts, nil
}
