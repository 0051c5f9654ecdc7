package types

import "time"

// RestoreState represents the restore lifecycle of an archival object
type RestoreState string

const (
	RestoreStateNotRequested RestoreState = "not-requested"
	RestoreStateInProgress   RestoreState = "in-progress"
	RestoreStateCompleted    RestoreState = "completed"
)

// TierStats accumulates object count and byte totals for one tier
type TierStats struct {
	Count int   `json:"count"`
	Bytes int64 `json:"bytes"`
}

// RestorePlan is the set of archival objects a restore run would touch,
// sorted by descending size (ties broken by ascending key). Distribution
// covers all objects seen during enumeration, not only the archival ones.
type RestorePlan struct {
	Bucket       string                    `json:"bucket"`
	Objects      []Object                  `json:"objects"`
	TotalBytes   int64                     `json:"total_bytes"`
	Distribution map[StorageTier]TierStats `json:"distribution"`
}

// IsEmpty returns true if the plan has nothing to restore
func (p *RestorePlan) IsEmpty() bool {
	return len(p.Objects) == 0
}

// ObjectOutcome records the result of one restore submission
type ObjectOutcome struct {
	Key         string `json:"key"`
	Succeeded   bool   `json:"succeeded"`
	ErrorDetail string `json:"error_detail,omitempty"`
}

// SubmissionOutcome aggregates the per-object results of a restore run.
// It only ever contains completed submissions; work never dispatched
// (e.g. after cancellation) does not appear.
type SubmissionOutcome struct {
	Bucket              string          `json:"bucket"`
	Objects             []ObjectOutcome `json:"objects"`
	SuccessCount        int             `json:"success_count"`
	FailureCount        int             `json:"failure_count"`
	TotalBytesAttempted int64           `json:"total_bytes_attempted"`
}

// Failures returns the outcomes that did not succeed
func (o *SubmissionOutcome) Failures() []ObjectOutcome {
	var failed []ObjectOutcome
	for _, obj := range o.Objects {
		if !obj.Succeeded {
			failed = append(failed, obj)
		}
	}
	return failed
}

// ObjectStatus is one archival object with its derived restore state.
// RestoreExpiry is set only for completed restores, and stays zero when
// the provider reported completion but the expiry could not be parsed.
type ObjectStatus struct {
	Object        Object       `json:"object"`
	State         RestoreState `json:"state"`
	RestoreExpiry time.Time    `json:"restore_expiry,omitempty"`
}

// StatusSummary buckets every archival object of a bucket into exactly
// one restore state, with byte roll-ups per bucket.
type StatusSummary struct {
	Bucket             string         `json:"bucket"`
	InProgress         []ObjectStatus `json:"in_progress"`
	Completed          []ObjectStatus `json:"completed"`
	NotRequested       []ObjectStatus `json:"not_requested"`
	BytesInProgress    int64          `json:"bytes_in_progress"`
	BytesCompleted     int64          `json:"bytes_completed"`
	BytesNotRequested  int64          `json:"bytes_not_requested"`
	TotalArchivalBytes int64          `json:"total_archival_bytes"`
}

// Total returns the number of archival objects across all three buckets
func (s *StatusSummary) Total() int {
	return len(s.InProgress) + len(s.Completed) + len(s.NotRequested)
}
