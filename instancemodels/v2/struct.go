/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package v2 holds the typed instance representation.
package v2

// AttributeHolder is implemented by every typed instance carrying attributes.
type AttributeHolder interface {
	GetTypeName() string
	GetAttributes() map[string]any
}

// Struct is a typed struct instance. Attributes is nil when no attribute is set.
type Struct struct {
	TypeName   string         `json:"typeName" dynamodbav:"typeName"`
	Attributes map[string]any `json:"attributes,omitempty" dynamodbav:"attributes,omitempty"`
}

// NewStruct creates a struct with the given attributes; attributes may be nil.
func NewStruct(typeName string, attributes map[string]any) *Struct {
	return &Struct{TypeName: typeName, Attributes: attributes}
}

func (s *Struct) GetTypeName() string            { return s.TypeName }
func (s *Struct) GetAttributes() map[string]any { return s.Attributes }

// GetAttribute returns a single attribute value.
func (s *Struct) GetAttribute(name string) any {
	return s.Attributes[name]
}

// SetAttribute sets a single attribute, allocating the map on first use.
func (s *Struct) SetAttribute(name string, value any) {
	if s.Attributes == nil {
		s.Attributes = make(map[string]any)
	}
	s.Attributes[name] = value
}
