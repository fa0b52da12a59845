package config

import (
	"os"
	"strings"
	"time"
)

// Unset and blank variables fall back to the default in every helper below.

func envOrDefault(key, defaultValue string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultValue
}

// durationEnvOrDefault accepts Go duration syntax ("3s", "250ms"). Zero,
// negative and unparsable values are ignored.
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	parsed, err := time.ParseDuration(envOrDefault(key, ""))
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(envOrDefault(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// listEnv splits a comma-separated variable. ok is false when the variable
// is unset or blank so callers can tell "unset" from "empty list".
func listEnv(key string) (values []string, ok bool) {
	raw := envOrDefault(key, "")
	if raw == "" {
		return nil, false
	}
	return splitList(raw), true
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
