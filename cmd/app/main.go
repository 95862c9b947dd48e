package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"jelajah/cmd/fx/config_fx"
	"jelajah/cmd/fx/controllers_fx"
	"jelajah/cmd/fx/db_fx"
	"jelajah/cmd/fx/districts_fx"
	"jelajah/cmd/fx/places_fx"
	"jelajah/cmd/fx/plans_fx"
	"jelajah/cmd/fx/trips_fx"
	"jelajah/internal/api/controllers"
	"jelajah/internal/config"
	"jelajah/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		districts_fx.Module,
		places_fx.Module,
		trips_fx.Module,
		plans_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			_ = log.Sync()
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	districtController *controllers.DistrictController,
	placeController *controllers.PlaceController,
	tripController *controllers.TripController,
	planController *controllers.PlanController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, districtController, placeController, tripController, planController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg config.Config,
	districtController *controllers.DistrictController,
	placeController *controllers.PlaceController,
	tripController *controllers.TripController,
	planController *controllers.PlanController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	districtGroup := r.Group("/districts")
	districtGroup.GET("", districtController.ListDistricts)
	districtGroup.GET("/:id", districtController.GetDistrict)
	districtGroup.GET("/:id/places", districtController.ListDistrictPlaces)

	placeGroup := r.Group("/places")
	placeGroup.GET("/discover", placeController.Discover)
	placeGroup.GET("/:id", placeController.GetPlaceByID)

	tripGroup := r.Group("/trips")
	tripGroup.POST("/generate", tripController.GenerateTrip)
	tripGroup.GET("/drafts/:draftId", tripController.GetDraft)
	tripGroup.DELETE("/drafts/:draftId/places/:placeId", tripController.RemoveStop)
	tripGroup.POST("/drafts/:draftId/regenerate", tripController.RegenerateTrip)

	planGroup := r.Group("/plans")
	planGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	planGroup.POST("", planController.SavePlan)
	planGroup.GET("", planController.ListPlans)
	planGroup.GET("/:id", planController.GetPlan)
	planGroup.PATCH("/:id/status", planController.UpdatePlanStatus)
	planGroup.DELETE("/:id", planController.DeletePlan)
	planGroup.DELETE("/:id/places/:placeId", planController.RemovePlanStop)
}
