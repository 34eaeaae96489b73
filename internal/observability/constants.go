package observability

// Metric names
const (
	RiotRequestsTotal        = "riot_requests_total"
	RiotRequestDuration      = "riot_request_duration_seconds"
	RotationCacheLookupTotal = "rotation_cache_lookups_total"
	RotationRefreshTotal     = "rotation_refresh_total"
)

// Label keys
const (
	LabelEndpoint = "endpoint"
	LabelStatus   = "status"
	LabelOutcome  = "outcome"
	LabelResult   = "result"
)

// Cache lookup outcomes
const (
	CacheOutcomeHit      = "hit"
	CacheOutcomeStale    = "stale"
	CacheOutcomeMiss     = "miss"
	CacheOutcomeError    = "error"
	CacheOutcomeDisabled = "disabled"
)
