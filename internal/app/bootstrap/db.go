// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/system/indexes"
	"github.com/medhedtech/medh-backend/internal/app/system/validators"
)

// EnsureSchema reconciles indexes and collection validators at startup.
// Both are idempotent; validators are skipped with a warning on Mongo
// deployments that do not support collMod.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MedhMongoDatabase); err != nil {
		return err
	}
	if err := validators.EnsureAll(ctx, deps.MedhMongoDatabase); err != nil {
		return err
	}
	logger.Info("schema ensured", zap.String("database", deps.MedhMongoDatabase.Name()))
	return nil
}
