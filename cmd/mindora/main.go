// Package main Mindora API
//
// @title           Mindora API
// @version         1.0
// @description     Дневник настроения, журнал и каталог статей поддержки
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name mindora_session
// @description Cookie сессии, выдаётся при регистрации и входе.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mindora/mindora/internal/app/mindora"
	"github.com/mindora/mindora/internal/config"
	"github.com/mindora/mindora/internal/lib/sl"
)

func main() {
	// .env необязателен, переменные окружения могут быть заданы снаружи
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := sl.New(cfg.LogLevel)

	logger.Info("starting mindora", slog.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := mindora.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.Info("mindora stopped gracefully")
}
