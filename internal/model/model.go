// Package model contains domain models shared across layers (bridge, HTTP, service, storage).
// Types here carry no persistence tags and no behaviour beyond parsing and validation.
package model

import "fmt"

// EntityType is the top-level category an attachment belongs to.
type EntityType string

const (
	EntityOwner      EntityType = "owners"
	EntityLessee     EntityType = "lessees"
	EntityRealEstate EntityType = "realEstates"
	EntityContract   EntityType = "contracts"
)

// EntityTypes lists every supported category in a stable order.
var EntityTypes = []EntityType{EntityOwner, EntityLessee, EntityRealEstate, EntityContract}

// ParseEntityType validates s against the closed set of entity types.
func ParseEntityType(s string) (EntityType, error) {
	for _, et := range EntityTypes {
		if string(et) == s {
			return et, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

func (e EntityType) String() string { return string(e) }
