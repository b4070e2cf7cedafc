// Package bootstrap assembles storage, services and the HTTP router from configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "catsgram-backend/docs"
	"catsgram-backend/internal/common/config"
	"catsgram-backend/internal/common/logger"
	"catsgram-backend/internal/common/middleware"
	postHTTP "catsgram-backend/internal/features/post/delivery/http"
	postRepo "catsgram-backend/internal/features/post/repository"
	postGorm "catsgram-backend/internal/features/post/repository/gorm"
	postMemory "catsgram-backend/internal/features/post/repository/memory"
	postRedis "catsgram-backend/internal/features/post/repository/redis"
	postService "catsgram-backend/internal/features/post/service"
	userHTTP "catsgram-backend/internal/features/user/delivery/http"
	userRepo "catsgram-backend/internal/features/user/repository"
	userGorm "catsgram-backend/internal/features/user/repository/gorm"
	userMemory "catsgram-backend/internal/features/user/repository/memory"
	userRedis "catsgram-backend/internal/features/user/repository/redis"
	userService "catsgram-backend/internal/features/user/service"
	"catsgram-backend/internal/platform/db"
	"catsgram-backend/internal/platform/redis"
)

// App owns the router and the storage connections behind it.
type App struct {
	cfg    *config.Config
	router *gin.Engine

	redis *redis.Client
	db    *db.Client
}

type stores struct {
	users userRepo.UserRepository
	posts postRepo.PostRepository
}

// New opens the configured storage and builds the router.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	st, err := app.openStores(ctx)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	users := userService.NewUserService(st.users)
	posts := postService.NewPostService(st.posts, users)

	app.router = app.newRouter(userHTTP.NewUserHandler(users), postHTTP.NewPostHandler(posts))

	logger.Info().Str("storage", cfg.Storage.Driver).Msg("Application initialized")
	return app, nil
}

func (a *App) openStores(ctx context.Context) (stores, error) {
	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		return stores{users: userMemory.NewMemoryRepository(), posts: postMemory.NewMemoryRepository()}, nil

	case config.DriverRedis:
		rc, err := redis.Open(ctx, a.cfg.RedisAddr(), a.cfg.Redis.Password, a.cfg.Redis.DB)
		if err != nil {
			return stores{}, err
		}
		a.redis = rc
		prefix := a.cfg.Redis.KeyPrefix
		return stores{
			users: userRedis.NewUserRepository(rc.Client, prefix),
			posts: postRedis.NewPostRepository(rc.Client, prefix),
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		dbc, err := db.Open(ctx, a.cfg.Storage.Driver, a.cfg.Database.DSN, a.cfg.Debug)
		if err != nil {
			return stores{}, err
		}
		a.db = dbc
		if a.cfg.Database.AutoMigrate {
			if err := dbc.Migrate(); err != nil {
				return stores{}, err
			}
		}
		return stores{
			users: userGorm.NewGormRepository(dbc.GetDB()),
			posts: postGorm.NewGormRepository(dbc.GetDB()),
		}, nil

	default:
		return stores{}, fmt.Errorf("unsupported storage driver %q", a.cfg.Storage.Driver)
	}
}

func (a *App) newRouter(users *userHTTP.UserHandler, posts *postHTTP.PostHandler) *gin.Engine {
	if !a.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(a.corsConfig()))
	router.Use(middleware.Errors())

	users.RegisterRoutes(router)
	posts.RegisterRoutes(router)

	if a.cfg.Server.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/health", a.health)
	router.GET("/live", a.live)
	router.GET("/ready", a.ready)

	return router
}

func (a *App) corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = len(a.cfg.Server.Origins) == 0
	for _, origin := range a.cfg.Server.Origins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
		}
	}
	if !corsConfig.AllowAllOrigins {
		corsConfig.AllowOrigins = a.cfg.Server.Origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
	return corsConfig
}

// Router returns the HTTP handler of the application.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases the storage connections.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}

// Migrate opens the configured SQL database and creates or updates its schema.
func Migrate(ctx context.Context, cfg *config.Config) error {
	if !cfg.UsesSQL() {
		return fmt.Errorf("storage driver %q has no schema to migrate", cfg.Storage.Driver)
	}

	dbc, err := db.Open(ctx, cfg.Storage.Driver, cfg.Database.DSN, cfg.Debug)
	if err != nil {
		return err
	}
	defer dbc.Close()

	return dbc.Migrate()
}
