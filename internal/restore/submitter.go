package restore

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/luciopaiva/glacier-retrieve/pkg/provider"
	"github.com/luciopaiva/glacier-retrieve/pkg/types"
)

// SubmitOptions controls a restore submission run
type SubmitOptions struct {
	Tier          string // Bulk, Standard or Expedited
	RetentionDays int32
	Concurrency   int

	// Progress, when set, is called with (processed, total) every
	// few completed objects. Reporting only; ordering is unspecified.
	Progress func(processed, total int)
}

func (o SubmitOptions) withDefaults() SubmitOptions {
	if o.Tier == "" {
		o.Tier = DefaultRestoreTier
	}
	if o.RetentionDays <= 0 {
		o.RetentionDays = DefaultRetentionDays
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	return o
}

// Submit issues one restore request per object in the plan, in plan
// order, over a bounded worker pool. A failed object is recorded in the
// outcome and never aborts the rest of the batch; there is no automatic
// retry. A request rejected because the object is already restoring or
// already restored counts as an ordinary failure carrying the
// provider's reason. Cancelling the context stops dispatching new
// requests; in-flight requests run to completion and are recorded, so
// the outcome only ever reflects finished work.
func (e *Engine) Submit(ctx context.Context, plan *types.RestorePlan, opts SubmitOptions) *types.SubmissionOutcome {
	opts = opts.withDefaults()

	outcome := &types.SubmissionOutcome{
		Bucket: plan.Bucket,
	}

	var mu sync.Mutex
	total := len(plan.Objects)

	g := new(errgroup.Group)
	g.SetLimit(opts.Concurrency)

	for _, obj := range plan.Objects {
		obj := obj
		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			err := e.storage.RequestRestore(ctx, plan.Bucket, obj.Key, provider.RestoreRequest{
				Tier:          opts.Tier,
				RetentionDays: opts.RetentionDays,
			})

			record := types.ObjectOutcome{
				Key:       obj.Key,
				Succeeded: err == nil,
			}
			if err != nil {
				record.ErrorDetail = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()

			outcome.Objects = append(outcome.Objects, record)
			outcome.TotalBytesAttempted += obj.Size
			if record.Succeeded {
				outcome.SuccessCount++
			} else {
				outcome.FailureCount++
			}

			if opts.Progress != nil && len(outcome.Objects)%progressInterval == 0 {
				opts.Progress(len(outcome.Objects), total)
			}

			// Errors are captured per object, never returned: a
			// returned error would cancel the rest of the group.
			return nil
		})
	}

	_ = g.Wait()

	return outcome
}
