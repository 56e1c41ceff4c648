package redisx

import "time"

const (
	// Session state: session:{session_id}:{storefront key} -> JSON snapshot
	KeySessionPrefix = "session:%s:"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLSession = 30 * 24 * time.Hour
	TTLDedup   = 48 * time.Hour
)
