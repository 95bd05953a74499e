package service

import "github.com/jonboulle/clockwork"

// isoMillis matches the ISO-8601 form browsers produce, e.g.
// 2025-01-01T10:00:00.000Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// stamp returns the millisecond id and ISO timestamp for a new record.
func stamp(clock clockwork.Clock) (int64, string) {
	now := clock.Now().UTC()
	return now.UnixMilli(), now.Format(isoMillis)
}
