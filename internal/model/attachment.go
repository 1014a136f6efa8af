package model

import "time"

// Scope identifies the storage location for one entity's attachments.
type Scope struct {
	EntityType EntityType `json:"entityType"`
	Identifier string     `json:"identifier"`
	EntityID   string     `json:"entityId"`
}

// Attachment describes a stored file. Name is its identity within a Scope.
type Attachment struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type,omitempty"`
	ModifiedAt  time.Time `json:"modified_at"`
}
