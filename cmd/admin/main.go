package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lilfaithontrack/abigail-admin/internal/client/api"
	"github.com/lilfaithontrack/abigail-admin/internal/client/cli"
	"github.com/lilfaithontrack/abigail-admin/internal/client/iocli"
	"github.com/lilfaithontrack/abigail-admin/internal/client/session"
	"github.com/lilfaithontrack/abigail-admin/internal/client/storage/boltdb"
	"github.com/lilfaithontrack/abigail-admin/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// .env не обязателен, отсутствие файла не ошибка
	_ = godotenv.Load()

	cfg := config.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.APIBaseURL, "API base URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local session database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	cfg.APIBaseURL = strings.TrimSuffix(*serverURL, "/")
	cfg.DBPath = *dbPath

	stdio := iocli.NewStdio()

	args := flag.Args()
	ctx := context.Background()

	// Открываем BoltDB хранилище сессии
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	sess := session.NewService(boltStorage)
	apiClient := api.NewClient(cfg.APIBaseURL, sess)
	admin := cli.New(stdio, apiClient, sess, cfg.UploadsBaseURL())

	if len(args) == 0 {
		admin.PrintUsage()
		os.Exit(1)
	}

	if err := admin.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Abigail Admin CLI\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
