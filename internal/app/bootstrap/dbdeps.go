// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medhedtech/medh-backend/internal/app/system/storage"
)

// DBDeps holds database/back-end dependencies for the app.
// Extend this struct as the app evolves.
type DBDeps struct {
	MedhMongoClient   *mongo.Client
	MedhMongoDatabase *mongo.Database

	// Redis is nil when the count cache is disabled.
	Redis *redis.Client

	// Files is the upload/certificate storage backend (local or S3).
	Files storage.Store
}
