package providers

import "time"

// DefaultKickOffZone is the zone upstream kick-off times are published in.
const DefaultKickOffZone = "America/Sao_Paulo"

// ResolveLocation loads tz, falling back to fallback when tz is empty or
// unknown. A nil fallback resolves to UTC.
func ResolveLocation(tz string, fallback *time.Location) *time.Location {
	if fallback == nil {
		fallback = time.UTC
	}
	if tz == "" {
		return fallback
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fallback
	}
	return loc
}
