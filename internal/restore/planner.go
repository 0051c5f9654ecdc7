package restore

import (
	"context"
	"sort"

	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// Plan enumerates the bucket and computes a restore plan: the archival
// objects sorted by descending size (ties broken by ascending key, so
// the order is deterministic) plus a per-tier size distribution over
// all objects as a diagnostic. Purely read-only; the same call backs
// both dry-run and the first phase of an actual restore.
func (e *Engine) Plan(ctx context.Context, bucket string) (*types.RestorePlan, error) {
	objects, err := e.Enumerate(ctx, bucket)
	if err != nil {
		return nil, err
	}

	plan := &types.RestorePlan{
		Bucket:       bucket,
		Distribution: make(map[types.StorageTier]types.TierStats),
	}

	for _, obj := range objects {
		stats := plan.Distribution[obj.Tier]
		stats.Count++
		stats.Bytes += obj.Size
		plan.Distribution[obj.Tier] = stats

		if obj.Tier.IsArchival() {
			plan.Objects = append(plan.Objects, obj)
			plan.TotalBytes += obj.Size
		}
	}

	sort.Slice(plan.Objects, func(i, j int) bool {
		if plan.Objects[i].Size != plan.Objects[j].Size {
			return plan.Objects[i].Size > plan.Objects[j].Size
		}
		return plan.Objects[i].Key < plan.Objects[j].Key
	})

	return plan, nil
}
