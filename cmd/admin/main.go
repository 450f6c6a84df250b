package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"
	"time"

	"golang.org/x/term"

	"fintrack/internal/domain/user"
	"fintrack/internal/infrastructure/postgres"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/config"
)

const usage = `Fintrack Admin CLI - Management commands for the fintrack API

Usage:
  admin <command> [options]

Commands:
  create-user   Create a user directly in the database

Examples:
  # Create a user, prompting for the password
  admin create-user --name="Ada Lovelace" --email=ada@example.com

  # Create a user non-interactively
  admin create-user --name="Ada Lovelace" --email=ada@example.com --password=secret1
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create-user":
		runCreateUser(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		fmt.Print(usage)
		os.Exit(1)
	}
}

func runCreateUser(args []string) {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)

	name := fs.String("name", "", "Full name of the user")
	email := fs.String("email", "", "Email address (stored lowercased)")
	password := fs.String("password", "", "Password (prompted when omitted)")

	fs.Usage = func() {
		fmt.Println("Usage: admin create-user [options]")
		fmt.Println("\nOptions:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *name == "" || *email == "" {
		fmt.Println("Error: --name and --email are required")
		fs.Usage()
		os.Exit(1)
	}

	pass := *password
	if pass == "" {
		var err error
		pass, err = promptPassword()
		if err != nil {
			log.Fatalf("Failed to read password: %v", err)
		}
	}
	if len(pass) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	passwordHash, err := auth.HashPassword(pass)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := postgres.NewUserRepository(db)
	u, err := userRepo.Create(ctx, user.CreateParams{
		Name:         *name,
		Email:        user.NormalizeEmail(*email),
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("Created user %d (%s)\n", u.ID, u.Email)
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
