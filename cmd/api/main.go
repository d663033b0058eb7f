package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"kec-portal/internal/auth"
	"kec-portal/internal/common"
	"kec-portal/internal/database"
	"kec-portal/internal/env"
	"kec-portal/internal/menu"
	"kec-portal/internal/notifications"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	// Context for background goroutines, cancelled on shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Portal database. The default DSN is in-memory: every restart starts
	// from the seed data.
	dsn := env.GetEnv(env.EnvDatabaseDSN, database.DefaultDSN)
	db, err := database.Open(dsn)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db, env.GetEnv(env.EnvMigrationsURL, "file://migrations")); err != nil {
		log.WithError(err).Fatal("failed to apply migrations")
	}

	// Stores
	menuRepo := menu.NewRepository(db)
	notifRepo := notifications.NewRepository(db)
	authRepo := auth.NewRepository(db)

	// Seed data is loaded explicitly here, never lazily on first access
	if err := menu.Seed(menuRepo); err != nil {
		log.WithError(err).Fatal("failed to seed menu data")
	}
	if err := notifications.Seed(notifRepo); err != nil {
		log.WithError(err).Fatal("failed to seed notifications")
	}
	if err := auth.Seed(authRepo); err != nil {
		log.WithError(err).Fatal("failed to seed users")
	}
	log.WithField("dsn", dsn).Info("database ready")

	// Sessions
	sessionStore := auth.NewSessionStore(
		authRepo,
		env.GetDuration(env.EnvSessionDuration, auth.DefaultSessionDuration),
		env.GetBool(env.EnvSecureCookies, false),
	)
	sessionStore.StartCleanup(ctx, time.Hour, log)

	// Handlers
	menuHandler := menu.NewHandler(menuRepo)
	notifHandler := notifications.NewHandler(notifRepo)
	authHandler := auth.NewHandler(authRepo, sessionStore)
	authMiddleware := auth.NewMiddleware(sessionStore)

	router := gin.Default()

	api := router.Group("/api")
	common.RegisterRoutes(api)
	menu.RegisterRoutes(api, menuHandler)
	notifications.RegisterRoutes(api, notifHandler)
	auth.RegisterRoutes(api, authHandler, authMiddleware)

	// Graceful shutdown handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("Shutting down...")
		cancel()
	}()

	addr := env.GetEnv(env.EnvListenAddr, ":8080")
	log.WithField("addr", addr).Info("starting portal API")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

/*
This project is the backend API for the KEC campus portal. Weekly hostel mess menus and role-targeted notifications for KEC students, plus the endpoints backing the portal admin panel.
Portal API Copyright (C) 2025 KEC Campus Portal Team
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
