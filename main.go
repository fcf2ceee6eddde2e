package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Rohan4404/DynamicAttandenceAppBackend/db"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/handlers"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/routes"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/services"
	"github.com/Rohan4404/DynamicAttandenceAppBackend/utils"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	database, err := db.NewDB()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	tokens := utils.NewTokenManager(secret, 24*time.Hour)
	mailer := utils.NewSMTPMailer()

	sm := services.NewServiceManager(database, mailer, tokens)
	hm := handlers.NewHandlerManager(sm)
	r := routes.SetupRoutes(hm, database, tokens)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	slog.Info("HR backend listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
