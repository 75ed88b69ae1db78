package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldSearchID   = "search_id"
	FieldGeneration = "generation"
	FieldTeamID     = "team_id"
	FieldTeamName   = "team_name"
	FieldTeamCount  = "team_count"
	FieldURL        = "url"
	FieldPath       = "path"
	FieldCacheHit   = "cache_hit"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
)
