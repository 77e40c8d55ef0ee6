package router

import (
	"context"
	"strings"
	"time"

	"starwars-api/config"
	"starwars-api/internal/database"
	"starwars-api/internal/handler"
	"starwars-api/internal/middleware"
	"starwars-api/internal/repository"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(middleware.RequestID(log))
	r.Use(cors.New(corsConfig(cfg.CORS)))
	r.Use(metrics.Handler())
	r.Use(middleware.ErrorHandler())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// Handlers
	sitemapHandler := handler.NewSitemapHandler(r.Routes)
	healthHandler := handler.NewHealthHandler(func(ctx context.Context) error { return database.Ping(ctx, db) })
	userHandler := handler.NewUserHandler(userRepo)
	planetHandler := handler.NewPlanetHandler(planetRepo, characterRepo)
	characterHandler := handler.NewCharacterHandler(characterRepo)
	favoriteHandler := handler.NewFavoriteHandler(favRepo)
	adminHandler := handler.NewAdminHandler(userRepo, planetRepo, characterRepo, favRepo)

	r.GET("/", sitemapHandler.Show)
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	r.GET("/characters", characterHandler.List)
	r.GET("/characters/:id", characterHandler.Get)
	r.GET("/planets", planetHandler.List)
	r.GET("/planets/:id", planetHandler.Get)
	r.GET("/planets/:id/characters", planetHandler.Characters)
	r.GET("/users", userHandler.List)
	r.GET("/users/:id", userHandler.Get)

	r.GET("/:user_id/favorites", favoriteHandler.List)
	r.POST("/favorites/planets", favoriteHandler.AddPlanet)
	r.POST("/favorites/characters", favoriteHandler.AddCharacter)
	r.DELETE("/:user_id/favorites/planets/:planet_id", favoriteHandler.RemovePlanet)
	r.DELETE("/:user_id/favorites/characters/:character_id", favoriteHandler.RemoveCharacter)

	admin := r.Group("/admin")
	{
		admin.GET("/", adminHandler.Index)
		admin.POST("/users", adminHandler.CreateUser)
		admin.POST("/planets", adminHandler.CreatePlanet)
		admin.POST("/characters", adminHandler.CreateCharacter)
		admin.DELETE("/:model/:id", adminHandler.Delete)
	}

	return r
}

func corsConfig(c config.CORSConfig) cors.Config {
	cc := cors.DefaultConfig()
	cc.AllowHeaders = append(cc.AllowHeaders, middleware.RequestIDHeader)
	cc.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(c.AllowOrigins) == 0 || (len(c.AllowOrigins) == 1 && strings.TrimSpace(c.AllowOrigins[0]) == "*") {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = c.AllowOrigins
	return cc
}
