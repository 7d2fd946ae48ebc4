/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"sort"
)

// TypeCategory classifies a type and selects the converter used for its values.
type TypeCategory int

const (
	Primitive TypeCategory = iota
	Enum
	Struct
	Classification
	Entity
	Array
	Map
)

var categoryNames = map[TypeCategory]string{
	Primitive:      "PRIMITIVE",
	Enum:           "ENUM",
	Struct:         "STRUCT",
	Classification: "CLASSIFICATION",
	Entity:         "ENTITY",
	Array:          "ARRAY",
	Map:            "MAP",
}

func (c TypeCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Type is the runtime metadata of a named type.
type Type interface {
	TypeName() string
	TypeCategory() TypeCategory
}

// Builtin primitive type names.
const (
	TypeBoolean    = "boolean"
	TypeByte       = "byte"
	TypeShort      = "short"
	TypeInt        = "int"
	TypeLong       = "long"
	TypeFloat      = "float"
	TypeDouble     = "double"
	TypeBigInteger = "biginteger"
	TypeBigDecimal = "bigdecimal"
	TypeString     = "string"
	TypeDate       = "date"
)

var primitiveNames = []string{
	TypeBoolean, TypeByte, TypeShort, TypeInt, TypeLong, TypeFloat,
	TypeDouble, TypeBigInteger, TypeBigDecimal, TypeString, TypeDate,
}

// PrimitiveType is one of the builtin scalar types.
type PrimitiveType struct {
	name string
}

func (t *PrimitiveType) TypeName() string           { return t.name }
func (t *PrimitiveType) TypeCategory() TypeCategory { return Primitive }

// EnumElement is a single enum value and its ordinal.
type EnumElement struct {
	Value   string `yaml:"value"`
	Ordinal int    `yaml:"ordinal"`
}

// EnumType is a named, closed set of string values.
type EnumType struct {
	name     string
	elements []EnumElement
}

// NewEnumType creates an enum type from its elements.
func NewEnumType(name string, elements []EnumElement) *EnumType {
	return &EnumType{name: name, elements: append([]EnumElement(nil), elements...)}
}

func (t *EnumType) TypeName() string           { return t.name }
func (t *EnumType) TypeCategory() TypeCategory { return Enum }

// Elements returns the enum elements in definition order.
func (t *EnumType) Elements() []EnumElement {
	return append([]EnumElement(nil), t.elements...)
}

// ElementByValue returns the element with the given value.
func (t *EnumType) ElementByValue(value string) (EnumElement, bool) {
	for _, e := range t.elements {
		if e.Value == value {
			return e, true
		}
	}
	return EnumElement{}, false
}

// ElementByOrdinal returns the element with the given ordinal.
func (t *EnumType) ElementByOrdinal(ordinal int) (EnumElement, bool) {
	for _, e := range t.elements {
		if e.Ordinal == ordinal {
			return e, true
		}
	}
	return EnumElement{}, false
}

// ArrayType is array<Element>.
type ArrayType struct {
	Element Type
}

func (t *ArrayType) TypeName() string           { return "array<" + t.Element.TypeName() + ">" }
func (t *ArrayType) TypeCategory() TypeCategory { return Array }

// MapType is map<Key,Value>.
type MapType struct {
	Key   Type
	Value Type
}

func (t *MapType) TypeName() string {
	return "map<" + t.Key.TypeName() + "," + t.Value.TypeName() + ">"
}
func (t *MapType) TypeCategory() TypeCategory { return Map }

// AttributeDef is an attribute as declared in a type definition.
type AttributeDef struct {
	Name string `yaml:"name"`
	// LegacyName is the attribute name used by the V1 representation, when it differs.
	LegacyName  string `yaml:"legacyName,omitempty"`
	TypeName    string `yaml:"typeName"`
	IsOptional  bool   `yaml:"isOptional,omitempty"`
	Cardinality string `yaml:"cardinality,omitempty"`
}

// Attribute is a resolved attribute of a struct type.
type Attribute struct {
	def   AttributeDef
	owner string
	typ   Type
}

// Name returns the canonical attribute name.
func (a *Attribute) Name() string { return a.def.Name }

// LegacyName returns the V1 attribute name.
func (a *Attribute) LegacyName() string {
	if a.def.LegacyName != "" {
		return a.def.LegacyName
	}
	return a.def.Name
}

// QualifiedName returns <owner type>.<name>.
func (a *Attribute) QualifiedName() string { return a.owner + "." + a.def.Name }

func (a *Attribute) Def() AttributeDef          { return a.def }
func (a *Attribute) Type() Type                 { return a.typ }
func (a *Attribute) TypeCategory() TypeCategory { return a.typ.TypeCategory() }

// StructType describes a struct, entity or classification type.
type StructType struct {
	name       string
	category   TypeCategory
	superTypes []string
	attributes map[string]*Attribute
	legacy     map[string]*Attribute
}

// NewStructType creates an empty struct-like type; category must be Struct, Entity or Classification.
func NewStructType(name string, category TypeCategory, superTypes ...string) *StructType {
	return &StructType{
		name:       name,
		category:   category,
		superTypes: superTypes,
		attributes: make(map[string]*Attribute),
		legacy:     make(map[string]*Attribute),
	}
}

func (t *StructType) TypeName() string           { return t.name }
func (t *StructType) TypeCategory() TypeCategory { return t.category }

// SuperTypes returns the names of the direct super types.
func (t *StructType) SuperTypes() []string {
	return append([]string(nil), t.superTypes...)
}

// AddAttribute adds an attribute of the given type. Existing attributes with
// the same name are replaced, which lets sub types override inherited ones.
func (t *StructType) AddAttribute(def AttributeDef, typ Type) *Attribute {
	attr := &Attribute{def: def, owner: t.name, typ: typ}
	t.attributes[def.Name] = attr
	if def.LegacyName != "" {
		t.legacy[def.LegacyName] = attr
	}
	return attr
}

// GetAttribute resolves an attribute by canonical name, falling back to its legacy name.
func (t *StructType) GetAttribute(name string) *Attribute {
	if attr, ok := t.attributes[name]; ok {
		return attr
	}
	return t.legacy[name]
}

// Attributes returns all attributes sorted by name.
func (t *StructType) Attributes() []*Attribute {
	ret := make([]*Attribute, 0, len(t.attributes))
	for _, a := range t.attributes {
		ret = append(ret, a)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name() < ret[j].Name() })
	return ret
}

// IsStructCategory reports whether values of the category carry attributes.
func IsStructCategory(c TypeCategory) bool {
	return c == Struct || c == Entity || c == Classification
}
