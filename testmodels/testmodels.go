/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels provides the sample type definitions used by tests.
package testmodels

import (
	"bytes"
	_ "embed"

	"github.com/suparena/entityconv/registry"
)

//go:embed typedefs.yaml
var typeDefsYAML []byte

// TypeDefsYAML returns the raw sample type definitions.
func TypeDefsYAML() []byte {
	return append([]byte(nil), typeDefsYAML...)
}

// NewTypeRegistry returns a registry loaded with the sample types. It panics on invalid definitions.
func NewTypeRegistry() *registry.TypeRegistry {
	def, err := registry.LoadTypesDef(bytes.NewReader(typeDefsYAML))
	if err != nil {
		panic(err)
	}
	types := registry.NewTypeRegistry()
	if err := types.AddTypesDef(def); err != nil {
		panic(err)
	}
	return types
}
