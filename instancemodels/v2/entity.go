/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package v2

// Status of an entity.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

// Entity is a typed entity instance.
type Entity struct {
	Struct
	GUID            string            `json:"guid"`
	Status          Status            `json:"status,omitempty"`
	Version         int64             `json:"version,omitempty"`
	Classifications []*Classification `json:"classifications,omitempty"`
}

// Classification is a typed classification instance attached to an entity.
type Classification struct {
	Struct
	EntityGUID string `json:"entityGuid,omitempty"`
}

// ObjectID references an entity by GUID.
type ObjectID struct {
	GUID     string `json:"guid" dynamodbav:"guid"`
	TypeName string `json:"typeName" dynamodbav:"typeName"`
}

// EntityWithExtInfo is an entity plus the entities it references, keyed by GUID.
type EntityWithExtInfo struct {
	Entity           *Entity            `json:"entity"`
	ReferredEntities map[string]*Entity `json:"referredEntities,omitempty"`
}

// GetReferredEntity returns a referred entity by GUID.
func (e *EntityWithExtInfo) GetReferredEntity(guid string) *Entity {
	if e.ReferredEntities == nil {
		return nil
	}
	return e.ReferredEntities[guid]
}
