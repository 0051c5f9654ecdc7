package restore

import (
	"strings"
	"time"
)

// restoreMarker is the parsed form of a provider restore header, e.g.
//
//	ongoing-request="true"
//	ongoing-request="false", expiry-date="Fri, 21 Dec 2012 00:00:00 GMT"
//
// A zero Expiry on a non-ongoing marker means the restore completed but
// the expiry could not be determined.
type restoreMarker struct {
	Ongoing bool
	Expiry  time.Time
}

// parseRestoreMarker parses a raw restore header. The second return is
// false when no marker is present (restore never requested). The parse
// is deliberately forgiving: a malformed marker degrades to a completed
// restore with unknown expiry rather than an error.
func parseRestoreMarker(raw string) (restoreMarker, bool) {
	if raw == "" {
		return restoreMarker{}, false
	}

	var m restoreMarker

	if v, ok := markerField(raw, "ongoing-request"); ok {
		m.Ongoing = v == "true"
	}

	if v, ok := markerField(raw, "expiry-date"); ok {
		if t, err := time.Parse(time.RFC1123, v); err == nil {
			m.Expiry = t
		}
	}

	return m, true
}

// markerField extracts the quoted value of `field="value"` from raw
func markerField(raw, field string) (string, bool) {
	prefix := field + `="`
	i := strings.Index(raw, prefix)
	if i < 0 {
		return "", false
	}

	rest := raw[i+len(prefix):]
	j := strings.Index(rest, `"`)
	if j < 0 {
		return "", false
	}

	return rest[:j], true
}
