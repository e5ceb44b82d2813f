package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"macrolog/internal/config"
	"macrolog/internal/handler"
	"macrolog/internal/logger"
	"macrolog/internal/middleware"
	"macrolog/internal/service"
	"macrolog/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := store.AutoMigrate(db); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	st := store.NewGorm(db)
	if err := store.Seed(context.Background(), st); err != nil {
		slog.Error("seed failed", "err", err)
		os.Exit(1)
	}

	tracker := service.NewTracker(st)
	users := service.NewUsers(st)
	auth := service.NewAuth(st)

	authH := handler.NewAuthHandler(auth)
	userH := handler.NewUserHandler(users)
	foodH := handler.NewFoodHandler(tracker)
	mealH := handler.NewMealHandler(tracker)
	trackH := handler.NewTrackerHandler(tracker)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)
	r.POST("/api/users", userH.Create)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/users/:id", userH.Get)
	api.PATCH("/users/:id/targets", userH.UpdateTargets)

	api.GET("/food-items", foodH.List)
	api.GET("/food-items/search", foodH.Search)
	api.GET("/food-items/:id", foodH.Get)
	api.POST("/food-items", foodH.Create)

	api.GET("/users/:id/meals", mealH.ListForDate)
	api.GET("/meals/:id", mealH.Get)
	api.POST("/meals", mealH.Create)
	api.PATCH("/meals/:id", mealH.Update)
	api.DELETE("/meals/:id", mealH.Delete)

	api.POST("/meal-items", mealH.CreateItem)
	api.PATCH("/meal-items/:id", mealH.UpdateItem)
	api.DELETE("/meal-items/:id", mealH.DeleteItem)

	api.GET("/users/:id/daily", trackH.Daily)
	api.GET("/users/:id/weekly", trackH.Weekly)
	api.GET("/users/:id/export", trackH.Export)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
