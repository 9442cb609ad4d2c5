package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/penny/internal/assistant"
	"github.com/MrJamesThe3rd/penny/internal/config"
	"github.com/MrJamesThe3rd/penny/internal/conversation"
	pennyHttp "github.com/MrJamesThe3rd/penny/internal/http"
	chatHandler "github.com/MrJamesThe3rd/penny/internal/http/chat"
	goalHandler "github.com/MrJamesThe3rd/penny/internal/http/goal"
	txHandler "github.com/MrJamesThe3rd/penny/internal/http/transaction"
	"github.com/MrJamesThe3rd/penny/internal/ledger"
	"github.com/MrJamesThe3rd/penny/internal/ledger/store"
	"github.com/MrJamesThe3rd/penny/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		ledgerService = ledger.NewService(store.New())
		chatLog       = conversation.NewLog()
		responder     = assistant.NewResponder(nil)
		engine        = assistant.NewEngine(ledgerService, responder, chatLog, cfg.Assistant.TypingDelay)
	)

	engine.SetUserName(cfg.Assistant.UserName)

	if cfg.Demo.Seed {
		if err := seed.Apply(context.Background(), ledgerService, chatLog); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	var (
		chatH = chatHandler.NewHandler(engine)
		txH   = txHandler.NewHandler(ledgerService)
		goalH = goalHandler.NewHandler(ledgerService)
	)

	router := pennyHttp.New(chatH, txH, goalH, cfg.Server.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
