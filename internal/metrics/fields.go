package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrTransform = "transform"
	AttrOutcome   = "outcome"
)

// Transform names recorded by RecordTransform.
const (
	TransformTeamStats = "team_stats"
	TransformCompare   = "compare"
	TransformLineup    = "lineup"
	TransformRecord    = "team_record"
	TransformPredict   = "predict"
)
