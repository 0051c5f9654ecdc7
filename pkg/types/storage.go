package types

import "time"

// Bucket represents a storage bucket
type Bucket struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Object represents an object in storage
type Object struct {
	Key          string      `json:"key"`
	Size         int64       `json:"size"`
	Tier         StorageTier `json:"tier"`
	LastModified time.Time   `json:"last_modified"`
}

// ObjectMetadata is the per-object head response from the provider.
// RestoreMarker carries the raw restore header; it is empty when no
// restore was ever requested for the object.
type ObjectMetadata struct {
	StorageClass  string `json:"storage_class"`
	Size          int64  `json:"size"`
	RestoreMarker string `json:"restore_marker,omitempty"`
}
