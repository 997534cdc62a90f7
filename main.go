package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sknikt/club-site-backend/api"
	"github.com/sknikt/club-site-backend/config"
	"github.com/sknikt/club-site-backend/database"
	"github.com/sknikt/club-site-backend/services"
	"github.com/sknikt/club-site-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	c := config.Load()

	if c.DatabaseDSN == "" {
		fmt.Println("DATABASE_DSN is not set. Exiting...")
		os.Exit(1)
	}
	if c.AdminAPIKey == "" {
		fmt.Println("ADMIN_API_KEY is not set. Exiting...")
		os.Exit(1)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  c.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.New(c.StaticRoot)
	if err != nil {
		fmt.Printf("Error preparing blob store directories: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)
	attachments := services.NewAttachmentManager(currentDB, store)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(c, currentDB, attachments)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
