package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/vocabcoach/internal/database"
	"github.com/example/vocabcoach/internal/notify"
	"github.com/example/vocabcoach/internal/scheduler"
)

func main() {
	// Local development keeps settings in .env; absence is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}

	notifier, err := notify.NewTelegramNotifier(token)
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	s := scheduler.New(notifier, database.NewLearnerRepository(), database.NewVocabularyRepository())
	s.Start()
	defer s.Stop()

	log.Println("Reminder scheduler started. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
}
