// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	adminstore "github.com/medhedtech/medh-backend/internal/app/store/admins"
	certstore "github.com/medhedtech/medh-backend/internal/app/store/certificates"
	"github.com/medhedtech/medh-backend/internal/app/system/workers"
)

// certRepair is started here and stopped in Shutdown.
var certRepair *workers.CertRepair

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// It seeds the superadmin account and starts the certificate repair
// worker.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	admins := adminstore.New(deps.MedhMongoDatabase)
	if err := admins.EnsureSeedAdmin(ctx, appCfg.SuperAdminEmail, appCfg.SuperAdminPassword, logger); err != nil {
		return err
	}

	if appCfg.CertRepairInterval > 0 {
		certRepair = workers.NewCertRepair(
			certstore.New(deps.MedhMongoDatabase),
			deps.Files,
			logger,
			appCfg.CertRepairInterval,
		)
		certRepair.Start()
	}

	return nil
}
