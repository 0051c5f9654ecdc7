package provider

import (
	"context"
	"errors"

	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// Common errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrNotConfigured    = errors.New("provider not configured")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
)

// ObjectPage is one page of a bucket listing. NextToken is the opaque
// continuation cursor; an empty token means the listing is exhausted.
type ObjectPage struct {
	Objects   []types.Object
	NextToken string
}

// RestoreRequest carries the parameters of one restore submission
type RestoreRequest struct {
	Tier          string // Bulk, Standard or Expedited
	RetentionDays int32  // days the restored copy stays readable
}

// StorageProvider defines the interface for object storage operations
type StorageProvider interface {
	// ListBuckets returns all buckets visible to the caller
	ListBuckets(ctx context.Context) ([]types.Bucket, error)

	// ListObjectsPage returns one page of objects. Pass an empty token
	// for the first page and the previous page's NextToken afterwards.
	ListObjectsPage(ctx context.Context, bucket, token string) (*ObjectPage, error)

	// GetObjectMetadata returns head metadata for a single object,
	// including its raw restore marker when one is present
	GetObjectMetadata(ctx context.Context, bucket, key string) (*types.ObjectMetadata, error)

	// RequestRestore submits an asynchronous restore for one object
	RequestRestore(ctx context.Context, bucket, key string, req RestoreRequest) error
}
