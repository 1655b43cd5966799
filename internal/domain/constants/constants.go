// Package constants contains string constants shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token revocation backends.
const (
	RevocationBackendRedis  = "redis"
	RevocationBackendMemory = "memory"
)

// TokenTypeBearer is the token_type returned on login.
const TokenTypeBearer = "bearer"
