package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-warden/internal/bot"
	"chat-warden/internal/config"
	"chat-warden/internal/repository"
	"chat-warden/internal/scheduler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	sched := scheduler.New(time.Local)
	sched.Start()
	defer sched.Stop()

	warden, err := bot.New(cfg.TelegramToken, userRepo, chatRepo, noteRepo, sched)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	log.Println("Chat warden started.")
	if err := warden.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
