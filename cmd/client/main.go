package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/iudanet/codeclimb/internal/client/api"
	"github.com/iudanet/codeclimb/internal/client/auth"
	"github.com/iudanet/codeclimb/internal/client/cli"
	"github.com/iudanet/codeclimb/internal/client/iocli"
	"github.com/iudanet/codeclimb/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "codeclimb-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Открываем локальную базу клиента
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := clientapi.NewClient(*serverURL)
	authService := auth.NewService(apiClient, boltStorage)
	app := cli.New(iocli.NewStdio(), apiClient, authService, boltStorage, *serverURL)

	var cmdErr error
	switch command {
	case "signup":
		cmdErr = app.RunSignup(ctx)
	case "login":
		cmdErr = app.RunLogin(ctx)
	case "logout":
		cmdErr = app.RunLogout(ctx)
	case "status":
		cmdErr = app.RunStatus(ctx)
	case "lists":
		cmdErr = app.RunLists(ctx)
	case "create-list":
		cmdErr = app.RunCreateList(ctx, args[1:])
	case "problems":
		cmdErr = app.RunProblems(ctx, args[1:])
	case "track":
		cmdErr = app.RunTrack(ctx, args[1:], logger)
	case "dashboard":
		cmdErr = app.RunDashboard(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("CodeClimb Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
