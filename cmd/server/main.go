package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"growth-tracker/internal/http/handlers"
	achievementh "growth-tracker/internal/http/handlers/achievement"
	chath "growth-tracker/internal/http/handlers/chat"
	goalh "growth-tracker/internal/http/handlers/goal"
	integrationh "growth-tracker/internal/http/handlers/integration"
	membershiph "growth-tracker/internal/http/handlers/membership"
	statsh "growth-tracker/internal/http/handlers/stats"
	userh "growth-tracker/internal/http/handlers/user"
	mw "growth-tracker/internal/http/middleware"
	"growth-tracker/internal/lib/config"
	"growth-tracker/internal/lib/sl"
	repo "growth-tracker/internal/repository"
	"growth-tracker/internal/service/achievement"
	"growth-tracker/internal/service/chat"
	"growth-tracker/internal/service/goal"
	"growth-tracker/internal/service/integration"
	"growth-tracker/internal/service/membership"
	"growth-tracker/internal/service/stats"
	"growth-tracker/internal/service/user"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting Growth Tracking Service", slog.String("env", cfg.Env))

	dsn := os.Getenv("DATABASE_URL")

	if err := runMigrations(dsn, cfg.Migrations); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}

	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	goalRepo := repo.NewGoalRepo(db, trmsqlx.DefaultCtxGetter)
	membershipRepo := repo.NewTeamMembershipRepo(db, trmsqlx.DefaultCtxGetter)
	achievementRepo := repo.NewAchievementRepo(db, trmsqlx.DefaultCtxGetter)
	chatRepo := repo.NewChatRepo(db, trmsqlx.DefaultCtxGetter)
	integrationRepo := repo.NewIntegrationRepo(db, trmsqlx.DefaultCtxGetter)
	statsRepo := repo.NewStatisticsRepo(db)

	userService := user.NewUserService(trManager, userRepo)
	goalService := goal.NewGoalService(trManager, goalRepo, userRepo)
	membershipService := membership.NewTeamMembershipService(trManager, membershipRepo, userRepo)
	achievementService := achievement.NewAchievementService(trManager, achievementRepo, userRepo)
	chatService := chat.NewChatService(trManager, chatRepo, userRepo)
	integrationService := integration.NewIntegrationService(trManager, integrationRepo, userRepo)
	statsService := stats.NewStatsService(trManager, statsRepo)

	userHandler := userh.NewUserHandler(log, userService)
	goalHandler := goalh.NewGoalHandler(log, goalService)
	membershipHandler := membershiph.NewMembershipHandler(log, membershipService)
	achievementHandler := achievementh.NewAchievementHandler(log, achievementService)
	chatHandler := chath.NewChatHandler(log, chatService)
	integrationHandler := integrationh.NewIntegrationHandler(log, integrationService)
	statsHandler := statsh.NewStatsHandler(log, statsService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	router.Get("/health", handlers.Healthcheck())

	router.Post("/users/create", userHandler.Create)
	router.Get("/users/get", userHandler.Get)
	router.Get("/users/list", userHandler.List)
	router.Post("/users/update", userHandler.Update)

	router.Post("/goals/create", goalHandler.Create)
	router.Post("/goals/submit", goalHandler.Submit)
	router.Post("/goals/approve", goalHandler.Approve)
	router.Post("/goals/update", goalHandler.Update)
	router.Get("/goals/get", goalHandler.Get)
	router.Get("/goals/byEmployee", goalHandler.GetByEmployee)

	router.Post("/memberships/create", membershipHandler.Create)
	router.Get("/memberships/byManager", membershipHandler.GetByManager)
	router.Get("/memberships/byEmployee", membershipHandler.GetByEmployee)

	router.Post("/achievements/create", achievementHandler.Create)
	router.Get("/achievements/byUser", achievementHandler.GetByUser)

	router.Post("/chat/sessions/create", chatHandler.CreateSession)
	router.Post("/chat/messages/create", chatHandler.CreateMessage)
	router.Get("/chat/messages/list", chatHandler.ListMessages)

	router.Post("/integrations/connect", integrationHandler.Connect)
	router.Get("/integrations/byUser", integrationHandler.GetByUser)
	router.Post("/integrations/disconnect", integrationHandler.Disconnect)

	router.Get("/analytics/summary", statsHandler.GetSummary)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func runMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
