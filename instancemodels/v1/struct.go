/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package v1 holds the legacy instance representation: loosely typed structs
// whose values are read through a fallible accessor.
package v1

// IStruct is the legacy struct capability. ValuesMap may fail when the
// instance is inconsistent.
type IStruct interface {
	GetTypeName() string
	ValuesMap() (map[string]any, error)
}

// Struct is a legacy struct instance.
type Struct struct {
	TypeName string         `json:"typeName"`
	Values   map[string]any `json:"attributes,omitempty"`
}

// NewStruct creates a struct with the given values; values may be nil.
func NewStruct(typeName string, values map[string]any) *Struct {
	return &Struct{TypeName: typeName, Values: values}
}

func (s *Struct) GetTypeName() string { return s.TypeName }

// ValuesMap returns the struct values. It never fails for Struct.
func (s *Struct) ValuesMap() (map[string]any, error) {
	return s.Values, nil
}

// Get returns a single value.
func (s *Struct) Get(name string) any {
	return s.Values[name]
}

// Set sets a single value, allocating the values map on first use.
func (s *Struct) Set(name string, value any) {
	if s.Values == nil {
		s.Values = make(map[string]any)
	}
	s.Values[name] = value
}

// EnumValue is the legacy enum representation.
type EnumValue struct {
	Value   string `json:"value"`
	Ordinal int    `json:"ordinal"`
}

func (e EnumValue) String() string { return e.Value }
