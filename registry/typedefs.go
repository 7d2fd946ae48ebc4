/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/suparena/entityconv/errors"
)

// TypesDef is a batch of type definitions, usually loaded from YAML.
type TypesDef struct {
	EnumDefs           []EnumDef   `yaml:"enumDefs,omitempty"`
	StructDefs         []StructDef `yaml:"structDefs,omitempty"`
	ClassificationDefs []StructDef `yaml:"classificationDefs,omitempty"`
	EntityDefs         []StructDef `yaml:"entityDefs,omitempty"`
}

// EnumDef defines an enum type.
type EnumDef struct {
	Name        string        `yaml:"name"`
	ElementDefs []EnumElement `yaml:"elementDefs"`
}

// StructDef defines a struct, classification or entity type.
type StructDef struct {
	Name          string         `yaml:"name"`
	SuperTypes    []string       `yaml:"superTypes,omitempty"`
	AttributeDefs []AttributeDef `yaml:"attributeDefs,omitempty"`
}

// LoadTypesDef decodes YAML type definitions. Unknown keys are rejected.
func LoadTypesDef(r io.Reader) (*TypesDef, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def TypesDef
	if err := dec.Decode(&def); err != nil {
		if err == io.EOF {
			return &def, nil
		}
		return nil, fmt.Errorf("failed to decode type definitions: %w", err)
	}
	return &def, nil
}

// AddTypesDef registers every type in def. Names are declared before any
// attribute is resolved, so definitions may reference each other in any
// order. On error the registry is left unchanged.
func (r *TypeRegistry) AddTypesDef(def *TypesDef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := make(map[string]Type)
	structDefs := make(map[string]StructDef)

	declare := func(name string, t Type) error {
		if name == "" {
			return errors.NewValidationError("name", "type name must not be empty")
		}
		if _, exists := r.types[name]; exists {
			return errors.NewAlreadyExistsError("type", name)
		}
		if _, exists := staged[name]; exists {
			return errors.NewAlreadyExistsError("type", name)
		}
		staged[name] = t
		return nil
	}

	for _, ed := range def.EnumDefs {
		if err := validateEnumDef(ed); err != nil {
			return err
		}
		if err := declare(ed.Name, NewEnumType(ed.Name, ed.ElementDefs)); err != nil {
			return err
		}
	}

	groups := []struct {
		category TypeCategory
		defs     []StructDef
	}{
		{Struct, def.StructDefs},
		{Classification, def.ClassificationDefs},
		{Entity, def.EntityDefs},
	}
	for _, g := range groups {
		for _, sd := range g.defs {
			if err := declare(sd.Name, NewStructType(sd.Name, g.category, sd.SuperTypes...)); err != nil {
				return err
			}
			structDefs[sd.Name] = sd
		}
	}

	lookup := func(name string) (Type, bool) {
		if t, ok := staged[name]; ok {
			return t, true
		}
		t, ok := r.types[name]
		return t, ok
	}

	resolver := &attributeResolver{
		defs:     structDefs,
		staged:   staged,
		lookup:   lookup,
		resolved: make(map[string]bool),
		visiting: make(map[string]bool),
	}
	for name := range structDefs {
		if err := resolver.resolve(name); err != nil {
			return err
		}
	}

	for name, t := range staged {
		r.types[name] = t
	}
	return nil
}

func validateEnumDef(ed EnumDef) error {
	if len(ed.ElementDefs) == 0 {
		return errors.NewValidationError(ed.Name, "enum must define at least one element")
	}
	values := make(map[string]bool, len(ed.ElementDefs))
	ordinals := make(map[int]bool, len(ed.ElementDefs))
	for _, e := range ed.ElementDefs {
		if values[e.Value] || ordinals[e.Ordinal] {
			return errors.NewValidationError(ed.Name, fmt.Sprintf("duplicate enum element %q (ordinal %d)", e.Value, e.Ordinal))
		}
		values[e.Value] = true
		ordinals[e.Ordinal] = true
	}
	return nil
}

type attributeResolver struct {
	defs     map[string]StructDef
	staged   map[string]Type
	lookup   lookupFunc
	resolved map[string]bool
	visiting map[string]bool
}

// resolve fills in the attributes of a staged struct type, inherited ones first.
func (ar *attributeResolver) resolve(name string) error {
	if ar.resolved[name] {
		return nil
	}
	if ar.visiting[name] {
		return errors.NewValidationError(name, "cyclic super type hierarchy")
	}
	ar.visiting[name] = true
	defer delete(ar.visiting, name)

	st := ar.staged[name].(*StructType)
	sd := ar.defs[name]

	for _, superName := range sd.SuperTypes {
		if _, staged := ar.defs[superName]; staged {
			if err := ar.resolve(superName); err != nil {
				return err
			}
		}
		t, ok := ar.lookup(superName)
		if !ok {
			return errors.NewValidationError(name, fmt.Sprintf("unknown super type %q", superName))
		}
		super, ok := t.(*StructType)
		if !ok || super.TypeCategory() != st.TypeCategory() {
			return errors.NewValidationError(name, fmt.Sprintf("super type %q must be of category %s", superName, st.TypeCategory()))
		}
		for _, attr := range super.Attributes() {
			st.AddAttribute(attr.Def(), attr.Type())
		}
	}

	for _, ad := range sd.AttributeDefs {
		if ad.Name == "" {
			return errors.NewValidationError(name, "attribute name must not be empty")
		}
		typ, err := resolveTypeName(ad.TypeName, ar.lookup)
		if err != nil {
			return errors.NewValidationError(name+"."+ad.Name, err.Error())
		}
		st.AddAttribute(ad, typ)
	}

	ar.resolved[name] = true
	return nil
}
