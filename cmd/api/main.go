package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shadowbuddy/config"
	_ "shadowbuddy/docs" // Swagger docs
	"shadowbuddy/internal/httpserver"
	"shadowbuddy/internal/interpreter/description"
	"shadowbuddy/internal/interpreter/intent"
	"shadowbuddy/internal/interpreter/parser"
	"shadowbuddy/internal/middleware"
	tasklistHTTP "shadowbuddy/internal/tasklist/delivery/http"
	tgDelivery "shadowbuddy/internal/tasklist/delivery/telegram"
	fileRepo "shadowbuddy/internal/tasklist/repository/file"
	"shadowbuddy/internal/tasklist/usecase"
	"shadowbuddy/pkg/gcalendar"
	"shadowbuddy/pkg/log"
	"shadowbuddy/pkg/telegram"
	"shadowbuddy/pkg/textmodel"
)

// @title       ShadowBuddy API
// @description Natural-language task commands over HTTP and Telegram.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShadowBuddy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Interpretation pipeline. The classifiers are frozen artifacts; a
	// service without them cannot interpret anything, so failing to load
	// either one aborts startup.
	intentModel, err := textmodel.Load(cfg.Models.IntentModelPath, cfg.Models.IntentVectorizerPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load intent model: %v", err)
	}
	descriptionModel, err := textmodel.Load(cfg.Models.DescriptionModelPath, cfg.Models.DescriptionVectorizerPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load description model: %v", err)
	}

	intentClassifier := intent.New(intentModel.Vectorizer(), intentModel.Classifier())
	descriptionExtractor := description.New(descriptionModel.Vectorizer(), descriptionModel.Classifier())
	cmdParser := parser.New(logger, intentClassifier, descriptionExtractor, cfg.Parser.CacheSize)

	// 4. Task list domain
	taskRepo := fileRepo.New(logger, cfg.Storage.TasksPath)

	// Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
		} else {
			calendarClient = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	taskUC, err := usecase.New(ctx, logger, taskRepo, calendarClient, cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load task list: %v", err)
	}

	// 5. Delivery
	taskHandler := tasklistHTTP.New(logger, cmdParser, taskUC)

	var telegramHandler *tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.NewHandler(logger, cmdParser, taskUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram disabled: TELEGRAM_BOT_TOKEN is missing")
	}

	// 6. HTTP Server
	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.HTTPServer.RateLimitPerMin),
		TaskHandler: taskHandler,
	}
	if telegramHandler != nil {
		srvCfg.TelegramHandler = telegramHandler
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
