package types

// StorageTier represents the access tier of a stored object
type StorageTier string

const (
	// TierStandard covers every storage class that is directly readable.
	TierStandard StorageTier = "standard"

	// TierArchivalInstant is archival storage with millisecond retrieval
	// (e.g. S3 Glacier Instant Retrieval).
	TierArchivalInstant StorageTier = "archival-instant"

	// TierArchivalDelayed is archival storage requiring an asynchronous
	// restore of minutes to hours (e.g. S3 Glacier Flexible Retrieval).
	TierArchivalDelayed StorageTier = "archival"

	// TierArchivalDeep is the coldest archival storage, with restore
	// times up to 48 hours (e.g. S3 Glacier Deep Archive).
	TierArchivalDeep StorageTier = "archival-deep"

	// TierUnknown marks an object whose metadata could not be fetched.
	// Classification of a present storage-class string never yields it.
	TierUnknown StorageTier = "unknown"
)

// ClassifyTier maps a provider storage-class string to a StorageTier.
// Total: empty and unrecognized strings classify as TierStandard so an
// unexpected storage class can never break a scan. TierUnknown is
// reserved for metadata-unavailable degradation and is never returned.
func ClassifyTier(storageClass string) StorageTier {
	switch storageClass {
	case "GLACIER_IR":
		return TierArchivalInstant
	case "GLACIER":
		return TierArchivalDelayed
	case "DEEP_ARCHIVE":
		return TierArchivalDeep
	default:
		return TierStandard
	}
}

// IsArchival returns true if objects in this tier need an explicit
// restore before their content is readable.
func (t StorageTier) IsArchival() bool {
	switch t {
	case TierArchivalInstant, TierArchivalDelayed, TierArchivalDeep:
		return true
	default:
		return false
	}
}
