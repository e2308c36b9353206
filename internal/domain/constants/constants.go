// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers.
const (
	StorageDriverPostgres  = "postgres"
	StorageDriverFirestore = "firestore"
	StorageDriverMemory    = "memory"
)

// Identity providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderLocal    = "local"
)
