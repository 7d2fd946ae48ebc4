/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package v1

// Entity states carried by ID.State.
const (
	StateActive  = "ACTIVE"
	StateDeleted = "DELETED"
)

// ID identifies a legacy entity instance.
type ID struct {
	ID       string `json:"id"`
	TypeName string `json:"typeName"`
	Version  int    `json:"version"`
	State    string `json:"state,omitempty"`
}

// Referenceable is a legacy entity: a struct with an identity and traits.
type Referenceable struct {
	Struct
	ID          *ID                `json:"id,omitempty"`
	Traits      []string           `json:"traits,omitempty"`
	TraitValues map[string]*Struct `json:"traitValues,omitempty"`
}

// NewReferenceable creates an entity instance with the given id and values.
func NewReferenceable(typeName, id string, values map[string]any) *Referenceable {
	return &Referenceable{
		Struct: Struct{TypeName: typeName, Values: values},
		ID:     &ID{ID: id, TypeName: typeName, State: StateActive},
	}
}

// AddTrait attaches a trait instance.
func (r *Referenceable) AddTrait(trait *Struct) {
	if r.TraitValues == nil {
		r.TraitValues = make(map[string]*Struct)
	}
	if _, exists := r.TraitValues[trait.TypeName]; !exists {
		r.Traits = append(r.Traits, trait.TypeName)
	}
	r.TraitValues[trait.TypeName] = trait
}
