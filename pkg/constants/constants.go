// Package constants holds project-wide identifiers shared across packages.
package constants

const (
	// ServiceName is the canonical service identifier used in logs, traces,
	// and metrics.
	ServiceName = "opora_backend"

	// ConfigName and ConfigFormat locate the config file (config.yaml).
	ConfigName   = "config"
	ConfigFormat = "yaml"
)
