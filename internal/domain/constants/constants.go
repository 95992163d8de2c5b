// Package constants defines values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Live channel message types
const (
	LiveMessageGeofenceAlert = "geofence_alert"
)

// Query limits
const (
	DefaultLocationHistoryLimit = 100
	DefaultWebHistoryLimit      = 100
	DefaultAlertLimit           = 100
	MaxQueryLimit               = 1000

	DashboardRecentLocations = 10
	DashboardRecentWebVisits = 20
	DashboardUnreadAlerts    = 100
)

// Token types
const (
	TokenTypeAccess = "access"
)
