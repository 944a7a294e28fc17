package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"messaging-server/internal/config"
	"messaging-server/internal/domain/contact"
	"messaging-server/internal/domain/conversation"
	"messaging-server/internal/domain/message"
	"messaging-server/internal/infrastructure/auth"
	"messaging-server/internal/infrastructure/database"
	"messaging-server/internal/infrastructure/database/transaction"
	"messaging-server/internal/infrastructure/logger"
	"messaging-server/internal/infrastructure/observability"
	"messaging-server/internal/infrastructure/repository/contactrepo"
	"messaging-server/internal/infrastructure/repository/conversationrepo"
	"messaging-server/internal/infrastructure/repository/messagerepo"
	"messaging-server/internal/infrastructure/repository/userrepo"
	"messaging-server/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	if cfg.SeedDemoData {
		if err := database.SeedDemoData(db); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
		log.Info().Msg("demo data seeded")
	}

	txDB := transaction.NewDatabase(db)
	userRepository := userrepo.NewUserGormRepository(txDB)
	contactRepository := contactrepo.NewContactGormRepository(txDB)
	conversationRepository := conversationrepo.NewConversationGormRepository(txDB)
	messageRepository := messagerepo.NewMessageGormRepository(txDB)

	conversationService := conversation.NewService(conversationRepository, userRepository)
	messageService := message.NewService(messageRepository, conversationService)
	contactService := contact.NewService(contactRepository, userRepository)

	identity := auth.NewIdentity(log)

	httpServer := httpserver.New(cfg, log, conversationService, messageService, contactService, identity)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
