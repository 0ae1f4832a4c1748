// Package bootstrap wires configuration, storage, services and the HTTP
// router into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/assist"
	"resume-builder/internal/export"
	"resume-builder/internal/extract"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
)

// App holds shared dependencies. Fields are exported so tests can swap
// implementations (renderer, repos) after Build.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.Store

	ResumesRepo   resumes.ResumesRepo
	ResumeService *resumes.Service
	AssistService *assist.Service
	ExportService *export.Service

	ResumeHandler *resumes.Handler
	AssistHandler *assist.Handler
	ExportHandler *export.Handler
}

// Build prepares shared dependencies and mounts the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ResumeHandler: app.ResumeHandler,
		AssistHandler: app.AssistHandler,
		ExportHandler: app.ExportHandler,
	})

	return app, nil
}

// buildDB connects and migrates. Dev-like environments fall back to
// in-memory repositories when the database is absent or unreachable;
// production refuses to start without one.
func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.db.memory", map[string]any{
				"reason": "DATABASE_URL empty",
			})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required when ENV=%s", cfg.Env)
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory", map[string]any{
				"reason": "connect failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db.memory", map[string]any{
				"reason": "migrations failed",
				"error":  err.Error(),
			})
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	var repo resumes.ResumesRepo
	if app.DB != nil {
		repo = &resumes.PGRepo{DB: app.DB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	resumeSvc := &resumes.Service{Repo: repo}

	assistSvc := &assist.Service{
		Client:  assist.SimulatedClient{},
		Extract: &extract.Extractor{},
	}

	exportSvc := &export.Service{
		Records:  repo,
		Renderer: &export.ChromePrinter{ExecPath: app.Config.ChromePath},
		Store:    app.Store,
	}

	app.ResumesRepo = repo
	app.ResumeService = resumeSvc
	app.AssistService = assistSvc
	app.ExportService = exportSvc
	app.ResumeHandler = resumes.NewHandler(resumeSvc)
	app.AssistHandler = assist.NewHandler(assistSvc)
	app.ExportHandler = export.NewHandler(exportSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
