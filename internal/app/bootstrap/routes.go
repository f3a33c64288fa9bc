// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	certificatesfeature "github.com/medhedtech/medh-backend/internal/app/features/certificates"
	coursesfeature "github.com/medhedtech/medh-backend/internal/app/features/courses"
	dashboardfeature "github.com/medhedtech/medh-backend/internal/app/features/dashboard"
	formsfeature "github.com/medhedtech/medh-backend/internal/app/features/forms"
	healthfeature "github.com/medhedtech/medh-backend/internal/app/features/health"
	jobsfeature "github.com/medhedtech/medh-backend/internal/app/features/jobs"
	legacyfeature "github.com/medhedtech/medh-backend/internal/app/features/legacy"
	loginfeature "github.com/medhedtech/medh-backend/internal/app/features/login"
	studentsfeature "github.com/medhedtech/medh-backend/internal/app/features/students"
	uploadsfeature "github.com/medhedtech/medh-backend/internal/app/features/uploads"
	"github.com/medhedtech/medh-backend/internal/app/system/auth"
	"github.com/medhedtech/medh-backend/internal/app/system/cache"
	"github.com/medhedtech/medh-backend/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. The API surface is JSON under
// /api/v1, with /health for orchestrators and, in local-storage mode,
// /files for uploaded objects.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewManager(appCfg.JWTSecret, "medh-api")
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	counts := cache.New(deps.Redis, logger)
	publicLimiter := ratelimit.New(appCfg.FormRateLimit, time.Minute)

	db := deps.MedhMongoDatabase

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MedhMongoClient, counts, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Locally stored uploads (S3 mode serves straight from the bucket/CDN)
	if appCfg.StorageType == "local" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	r.Route("/api/v1", func(api chi.Router) {
		loginHandler := loginfeature.NewHandler(db, tokens, logger)
		api.Mount("/auth", loginfeature.Routes(loginHandler, publicLimiter))

		coursesHandler := coursesfeature.NewHandler(db, logger)
		api.Mount("/tcourse", coursesfeature.Routes(coursesHandler, tokens))

		studentsHandler := studentsfeature.NewHandler(db, logger)
		api.Mount("/students", studentsfeature.Routes(studentsHandler, tokens))

		certsHandler := certificatesfeature.NewHandler(db, deps.Files, logger)
		api.Mount("/certificates", certificatesfeature.Routes(certsHandler, tokens))

		formsHandler := formsfeature.NewHandler(db, logger)
		api.Mount("/forms", formsfeature.Routes(formsHandler, tokens, publicLimiter))

		jobsHandler := jobsfeature.NewHandler(db, logger)
		api.Mount("/jobs", jobsfeature.Routes(jobsHandler, tokens))

		uploadsHandler := uploadsfeature.NewHandler(deps.Files, logger, appCfg.MaxImageUploadBytes, appCfg.MaxDocumentUploadBytes)
		api.Mount("/uploads", uploadsfeature.Routes(uploadsHandler, tokens))

		dashboardHandler := dashboardfeature.NewHandler(db, counts, logger)
		api.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, tokens))

		legacyHandler := legacyfeature.NewHandler(db, logger)
		api.Mount("/legacy-courses", legacyfeature.Routes(legacyHandler, tokens))
	})

	return r, nil
}
