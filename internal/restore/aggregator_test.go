package restore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciopaiva/glacier-retrieve/pkg/provider"
	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

func TestAggregateStatusBuckets(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{
		archivalObject("ongoing.bin", 100),
		archivalObject("done.bin", 200),
		archivalObject("untouched.bin", 300),
		standardObject("hot.txt", 999), // not archival, excluded entirely
	}})
	fake.metadata["ongoing.bin"] = &types.ObjectMetadata{
		StorageClass:  "GLACIER",
		Size:          100,
		RestoreMarker: `ongoing-request="true"`,
	}
	fake.metadata["done.bin"] = &types.ObjectMetadata{
		StorageClass:  "GLACIER",
		Size:          200,
		RestoreMarker: `ongoing-request="false", expiry-date="Fri, 21 Dec 2012 00:00:00 GMT"`,
	}
	fake.metadata["untouched.bin"] = &types.ObjectMetadata{
		StorageClass: "GLACIER",
		Size:         300,
	}

	engine := NewEngine(fake)
	summary, err := engine.AggregateStatus(context.Background(), "bucket", StatusOptions{})
	require.NoError(t, err)

	require.Len(t, summary.InProgress, 1)
	require.Len(t, summary.Completed, 1)
	require.Len(t, summary.NotRequested, 1)

	assert.Equal(t, "ongoing.bin", summary.InProgress[0].Object.Key)
	assert.Equal(t, "done.bin", summary.Completed[0].Object.Key)
	assert.Equal(t, "untouched.bin", summary.NotRequested[0].Object.Key)

	wantExpiry := time.Date(2012, time.December, 21, 0, 0, 0, 0, time.UTC)
	assert.True(t, summary.Completed[0].RestoreExpiry.Equal(wantExpiry))

	assert.Equal(t, int64(100), summary.BytesInProgress)
	assert.Equal(t, int64(200), summary.BytesCompleted)
	assert.Equal(t, int64(300), summary.BytesNotRequested)
	assert.Equal(t, int64(600), summary.TotalArchivalBytes)
}

func TestAggregateStatusDisjointAndExhaustive(t *testing.T) {
	t.Parallel()

	objects := []types.Object{
		archivalObject("a", 1),
		archivalObject("b", 2),
		archivalObject("c", 3),
		archivalObject("d", 4),
	}
	fake := newFakeProvider(pagesOf(objects, 2)...)
	fake.metadata["a"] = &types.ObjectMetadata{StorageClass: "GLACIER", Size: 1, RestoreMarker: `ongoing-request="true"`}
	fake.metadata["b"] = &types.ObjectMetadata{StorageClass: "GLACIER", Size: 2, RestoreMarker: `ongoing-request="false", expiry-date="Fri, 21 Dec 2012 00:00:00 GMT"`}

	engine := NewEngine(fake)
	summary, err := engine.AggregateStatus(context.Background(), "bucket", StatusOptions{Concurrency: 2})
	require.NoError(t, err)

	// Every archival key lands in exactly one bucket
	seen := make(map[string]int)
	for _, st := range summary.InProgress {
		seen[st.Object.Key]++
	}
	for _, st := range summary.Completed {
		seen[st.Object.Key]++
	}
	for _, st := range summary.NotRequested {
		seen[st.Object.Key]++
	}

	assert.Len(t, seen, len(objects))
	for key, count := range seen {
		assert.Equal(t, 1, count, "key %s in %d buckets", key, count)
	}

	// Byte roll-ups sum to the archival total
	assert.Equal(t, summary.TotalArchivalBytes,
		summary.BytesInProgress+summary.BytesCompleted+summary.BytesNotRequested)
}

func TestAggregateStatusDegradesMetadataFailure(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{
		archivalObject("ok.bin", 100),
		archivalObject("broken.bin", 200),
	}})
	fake.metadata["ok.bin"] = &types.ObjectMetadata{StorageClass: "GLACIER", Size: 100}
	fake.metadataErr["broken.bin"] = errors.New("access denied")

	engine := NewEngine(fake)
	summary, err := engine.AggregateStatus(context.Background(), "bucket", StatusOptions{})
	require.NoError(t, err, "per-object metadata failures must not propagate")

	require.Len(t, summary.NotRequested, 2)

	var degraded *types.ObjectStatus
	for i := range summary.NotRequested {
		if summary.NotRequested[i].Object.Key == "broken.bin" {
			degraded = &summary.NotRequested[i]
		}
	}
	require.NotNil(t, degraded)

	assert.Equal(t, types.TierUnknown, degraded.Object.Tier)
	assert.Zero(t, degraded.Object.Size)
	assert.Equal(t, types.RestoreStateNotRequested, degraded.State)

	// Degraded objects contribute zero bytes, so the roll-up invariant
	// still holds over the post-degradation sizes.
	assert.Equal(t, int64(100), summary.TotalArchivalBytes)
}

func TestAggregateStatusEmptyBucket(t *testing.T) {
	t.Parallel()

	engine := NewEngine(newFakeProvider(provider.ObjectPage{}))

	summary, err := engine.AggregateStatus(context.Background(), "empty", StatusOptions{})
	require.NoError(t, err)

	assert.Zero(t, summary.Total())
	assert.Zero(t, summary.TotalArchivalBytes)
}

func TestAggregateStatusPropagatesEnumerationFailure(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{archivalObject("a", 1)}})
	fake.listFailAt = 0
	engine := NewEngine(fake)

	summary, err := engine.AggregateStatus(context.Background(), "bucket", StatusOptions{})
	require.Error(t, err)
	assert.Nil(t, summary)
}

func TestObjectStatusUsesHeadMetadata(t *testing.T) {
	t.Parallel()

	// The head response is authoritative for tier and size, e.g. when
	// the listing and the head disagree after a storage-class change.
	fake := newFakeProvider()
	fake.metadata["moved.bin"] = &types.ObjectMetadata{StorageClass: "DEEP_ARCHIVE", Size: 512}

	engine := NewEngine(fake)
	st := engine.objectStatus(context.Background(), "bucket", archivalObject("moved.bin", 100))

	assert.Equal(t, types.TierArchivalDeep, st.Object.Tier)
	assert.Equal(t, int64(512), st.Object.Size)
	assert.Equal(t, types.RestoreStateNotRequested, st.State)
}
