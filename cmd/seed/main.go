package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"peerswipe/internal/config"
	"peerswipe/internal/db"
	"peerswipe/internal/model"
	"peerswipe/internal/pseudonym"
	"peerswipe/internal/repository"
)

const maxPseudonymAttempts = 20

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	if cfg.AdminEmail == "" || cfg.AdminPass == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	created, err := seedAdmin(context.Background(), users, pseudonym.NewGenerator(), cfg.AdminEmail, cfg.AdminPass)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	if created {
		log.Printf("Admin %s created", cfg.AdminEmail)
	} else {
		log.Printf("Existing user %s promoted to admin", cfg.AdminEmail)
	}
}

// seedAdmin creates the admin account, or promotes it when the email is
// already registered. The password of an existing account is left alone.
func seedAdmin(ctx context.Context, users repository.UserRepository, names pseudonym.Generator, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := users.FindByEmail(ctx, email)
	if err == nil {
		if err := users.SetAdmin(ctx, existing.ID, true); err != nil {
			return false, fmt.Errorf("promote %s: %w", email, err)
		}
		return false, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("look up %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	var name string
	for i := 0; i < maxPseudonymAttempts && name == ""; i++ {
		candidate := names.Generate()
		taken, err := users.PseudonymExists(ctx, candidate)
		if err != nil {
			return false, fmt.Errorf("check pseudonym: %w", err)
		}
		if !taken {
			name = candidate
		}
	}
	if name == "" {
		return false, stderrors.New("no free pseudonym")
	}

	admin := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Pseudonym:    name,
		IsAdmin:      true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create %s: %w", email, err)
	}
	return true, nil
}
