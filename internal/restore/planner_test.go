package restore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciopaiva/glacier-retrieve/pkg/provider"
	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

func TestPlanEmptyBucket(t *testing.T) {
	t.Parallel()

	engine := NewEngine(newFakeProvider(provider.ObjectPage{}))

	plan, err := engine.Plan(context.Background(), "empty")
	require.NoError(t, err)

	assert.True(t, plan.IsEmpty())
	assert.Empty(t, plan.Objects)
	assert.Zero(t, plan.TotalBytes)
}

func TestPlanFiltersToArchivalOnly(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{
		standardObject("hot.txt", 100),
		archivalObject("cold.bin", 200),
		{Key: "deep.bin", Size: 300, Tier: types.TierArchivalDeep},
		{Key: "instant.bin", Size: 50, Tier: types.TierArchivalInstant},
	}})
	engine := NewEngine(fake)

	plan, err := engine.Plan(context.Background(), "bucket")
	require.NoError(t, err)

	require.Len(t, plan.Objects, 3)
	for _, obj := range plan.Objects {
		assert.True(t, obj.Tier.IsArchival())
	}
	assert.Equal(t, int64(550), plan.TotalBytes)
}

func TestPlanSortsBySizeDescendingThenKey(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{
		archivalObject("c", 50),
		archivalObject("b", 100),
		archivalObject("a", 100),
	}})
	engine := NewEngine(fake)

	plan, err := engine.Plan(context.Background(), "bucket")
	require.NoError(t, err)

	keys := make([]string, len(plan.Objects))
	for i, obj := range plan.Objects {
		keys[i] = obj.Key
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestPlanDistributionCoversAllTiers(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{
		standardObject("s1", 10),
		standardObject("s2", 20),
		archivalObject("g1", 100),
		{Key: "d1", Size: 1000, Tier: types.TierArchivalDeep},
	}})
	engine := NewEngine(fake)

	plan, err := engine.Plan(context.Background(), "bucket")
	require.NoError(t, err)

	// Distribution is a diagnostic over all objects, not only archival
	assert.Equal(t, types.TierStats{Count: 2, Bytes: 30}, plan.Distribution[types.TierStandard])
	assert.Equal(t, types.TierStats{Count: 1, Bytes: 100}, plan.Distribution[types.TierArchivalDelayed])
	assert.Equal(t, types.TierStats{Count: 1, Bytes: 1000}, plan.Distribution[types.TierArchivalDeep])
}

func TestPlanIsReadOnly(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{
		archivalObject("cold.bin", 200),
	}})
	engine := NewEngine(fake)

	_, err := engine.Plan(context.Background(), "bucket")
	require.NoError(t, err)

	assert.Empty(t, fake.restoredKeys(), "planning must not submit restores")
}

func TestPlanPropagatesEnumerationFailure(t *testing.T) {
	t.Parallel()

	fake := newFakeProvider(provider.ObjectPage{Objects: []types.Object{archivalObject("a", 1)}})
	fake.listFailAt = 0
	engine := NewEngine(fake)

	plan, err := engine.Plan(context.Background(), "bucket")
	require.Error(t, err)
	assert.Nil(t, plan, "no partial plan on enumeration failure")
}
