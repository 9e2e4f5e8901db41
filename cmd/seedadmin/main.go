package main

import (
	"context"
	"flag"
	"log"

	"shiprecon/internal/config"
	"shiprecon/internal/repository/postgres"
	"shiprecon/internal/service"
)

// Seeds the initial admin login. Run once after migrations.
func main() {
	username := flag.String("username", "admin", "admin username")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	authSvc := service.NewAuthService(postgres.NewUserRepo(db), cfg.JWT)
	user, err := authSvc.CreateUser(context.Background(), *username, *password)
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	log.Printf("created user %s (%s)", user.Username, user.ID)
}
