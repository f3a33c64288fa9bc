// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to the Medh API:
// backend connection strings, storage, auth secrets, and limits.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Redis (dashboard count cache). Blank addr disables caching.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Admin API auth
	JWTSecret          string // HMAC signing key for admin tokens
	SuperAdminEmail    string // Seed superadmin account (created/promoted on startup)
	SuperAdminPassword string // Initial password when the seed account must be created

	// File storage configuration
	StorageType      string // Storage backend: "local" or "s3"
	StorageLocalPath string // Local storage path (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving local files (e.g., "/files")

	// S3 configuration (only used if StorageType is "s3")
	StorageS3Region    string // AWS region
	StorageS3Bucket    string // S3 bucket name
	StorageS3Prefix    string // Key prefix (e.g., "medh/")
	StorageS3PublicURL string // CDN/public base URL; blank falls back to the bucket URL

	// Upload limits (bytes)
	MaxImageUploadBytes    int64
	MaxDocumentUploadBytes int64

	// Public form submission rate limit (requests per minute per IP)
	FormRateLimit int

	// Certificate repair worker cadence. Zero disables the worker.
	CertRepairInterval time.Duration
}
