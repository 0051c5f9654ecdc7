// Package restore implements the restore orchestration engine: bucket
// enumeration, tier classification, restore planning, submission with
// partial-failure tracking, and status aggregation. The engine holds no
// state of its own; every result is derived from a live provider scan.
package restore

import (
	"context"
	"fmt"

	"github.com/luciopaiva/glacier-retrieve/pkg/provider"
	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

const (
	// DefaultConcurrency caps parallel per-object provider calls
	DefaultConcurrency = 10

	// DefaultRestoreTier is the retrieval tier used when none is given
	DefaultRestoreTier = "Bulk"

	// DefaultRetentionDays is how long restored copies stay readable
	DefaultRetentionDays = 2

	// progressInterval is how many processed objects pass between
	// progress callbacks
	progressInterval = 10
)

// Engine orchestrates restore operations against a storage provider
type Engine struct {
	storage provider.StorageProvider
}

// NewEngine creates an engine backed by the given provider
func NewEngine(storage provider.StorageProvider) *Engine {
	return &Engine{
		storage: storage,
	}
}

// Enumerate returns every object in the bucket, following continuation
// tokens until the listing is exhausted. Pages are concatenated in
// provider order. An empty bucket yields an empty slice; any page
// failure aborts the whole enumeration with no partial result.
func (e *Engine) Enumerate(ctx context.Context, bucket string) ([]types.Object, error) {
	var objects []types.Object
	token := ""

	for {
		page, err := e.storage.ListObjectsPage(ctx, bucket, token)
		if err != nil {
			return nil, fmt.Errorf("listing of bucket %s failed: %w", bucket, err)
		}

		objects = append(objects, page.Objects...)

		if page.NextToken == "" {
			break
		}
		token = page.NextToken
	}

	return objects, nil
}
