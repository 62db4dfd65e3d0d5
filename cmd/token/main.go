// Package main issues bearer tokens accepted by the ledger API.
//
// Usage:
//
//	token -subject ops -ttl 24h
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
)

func main() {
	subject := flag.String("subject", "ledger-client", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	token, err := tokenService.GenerateAccessToken(context.Background(), *subject, *ttl)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
