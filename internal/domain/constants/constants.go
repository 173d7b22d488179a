// Package constants holds shared domain-level constants.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider identifiers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Query limits for the list endpoints.
const (
	// GratitudeHistoryLimit caps the gratitude "history" view.
	GratitudeHistoryLimit = 50

	// MeditationRecentLimit caps the recent meditation sessions view.
	MeditationRecentLimit = 10
)
