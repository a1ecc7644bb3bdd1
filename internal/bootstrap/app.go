package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	socialauth "lookcircuit-backend/internal/auth"
	"lookcircuit-backend/internal/catalog"
	"lookcircuit-backend/internal/design"
	"lookcircuit-backend/internal/face"
	"lookcircuit-backend/internal/recommendations"
	"lookcircuit-backend/internal/scans"
	"lookcircuit-backend/internal/sessions"
	"lookcircuit-backend/internal/shared/config"
	"lookcircuit-backend/internal/shared/server"
	"lookcircuit-backend/internal/shared/storage/db"
	"lookcircuit-backend/internal/shared/storage/object"
	localstore "lookcircuit-backend/internal/shared/storage/object/local"
	s3store "lookcircuit-backend/internal/shared/storage/object/s3"
	"lookcircuit-backend/internal/shared/telemetry"
	"lookcircuit-backend/internal/users"
	"lookcircuit-backend/internal/wardrobe"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Store    object.ObjectStore
	Analyzer face.Analyzer
	Catalog  *catalog.Catalog

	ScansRepo    scans.Repo
	UsersRepo    users.Repo
	WardrobeRepo wardrobe.Repo
	SessionStore sessions.Store

	ScansService *scans.Service
	UsersService *users.Service
	Sessions     *sessions.Manager

	ScanHandler            *scans.Handler
	RecommendationsHandler *recommendations.Handler
	CatalogHandler         *catalog.Handler
	WardrobeHandler        *wardrobe.Handler
	UsersHandler           *users.Handler
	SessionHandler         *sessions.Handler
	DesignHandler          *design.Handler
	SocialAuth             *socialauth.Service
}

// Build prepares dependencies and wires the router.
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
		Config:   cfg,
		DB:       sqlDB,
		Store:    store,
		Analyzer: face.NewAnalyzer(cfg.Analyzer),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:                 app.Config,
		DB:                     app.DB,
		ScanHandler:            app.ScanHandler,
		RecommendationsHandler: app.RecommendationsHandler,
		CatalogHandler:         app.CatalogHandler,
		WardrobeHandler:        app.WardrobeHandler,
		UserHandler:            app.UsersHandler,
		SessionHandler:         app.SessionHandler,
		DesignHandler:          app.DesignHandler,
		SocialAuth:             app.SocialAuth,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"object_store": cfg.ObjectStoreType,
		"analyzer":     app.Analyzer.Name(),
		"database":     sqlDB != nil,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var scanRepo scans.Repo
	var userRepo users.Repo
	var wardrobeRepo wardrobe.Repo

	if app.DB != nil {
		scanRepo = &scans.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		wardrobeRepo = &wardrobe.PGRepo{DB: app.DB}
	} else {
		scanRepo = scans.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		mem, err := wardrobe.NewMemoryRepo()
		if err != nil {
			return err
		}
		wardrobeRepo = mem
	}

	products, err := catalog.New()
	if err != nil {
		return err
	}

	scanSvc := &scans.Service{Repo: scanRepo, Store: app.Store, Analyzer: app.Analyzer}
	userSvc := users.NewService(userRepo)
	sessionStore := sessions.NewMemoryStore()
	if ttl := app.Config.SessionTTLMinutes; ttl > 0 {
		sessionStore.TTL = time.Duration(ttl) * time.Minute
	}
	bundles := recommendations.StaticSource{}
	manager := &sessions.Manager{
		Store:    sessionStore,
		Products: products,
		Wardrobe: wardrobeRepo,
		Bundles:  bundles,
		Scans:    scanRepo,
	}

	app.Catalog = products
	app.ScansRepo = scanRepo
	app.UsersRepo = userRepo
	app.WardrobeRepo = wardrobeRepo
	app.SessionStore = sessionStore
	app.ScansService = scanSvc
	app.UsersService = userSvc
	app.Sessions = manager

	app.ScanHandler = scans.NewHandler(scanSvc)
	app.RecommendationsHandler = recommendations.NewHandler(bundles)
	app.CatalogHandler = catalog.NewHandler(products)
	app.WardrobeHandler = wardrobe.NewHandler(wardrobeRepo)
	app.UsersHandler = users.NewHandler(userSvc)
	app.SessionHandler = sessions.NewHandler(manager)
	app.DesignHandler = design.NewHandler()
	app.SocialAuth = socialauth.NewService(app.Config.UIRedirectURL, userSvc,
		socialauth.GoogleProvider(app.Config.GoogleClientID, app.Config.GoogleClientSecret, app.Config.GoogleRedirectURL),
		socialauth.FacebookProvider(app.Config.FacebookClientID, app.Config.FacebookClientSecret, app.Config.FacebookRedirectURL),
	)
	return nil
}
