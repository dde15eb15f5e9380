//go:build ignore

// generate-jwt.go mints a session token for local testing without a wallet
// signature round trip.
//
// Usage:
//   go run scripts/generate-jwt.go -config config.yaml -address 0x...

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/rwadex/rwa-dex-api/pkg/auth"
	"github.com/rwadex/rwa-dex-api/pkg/config"
)

var (
	configPath = flag.String("config", "config.yaml", "Path to config file")
	address    = flag.String("address", "", "Wallet address the token is issued to")
)

func main() {
	flag.Parse()

	if !auth.ValidateEVMAddress(*address) {
		fmt.Fprintln(os.Stderr, "Error: -address must be a 0x-prefixed 20 byte hex address")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTExpiry)
	token, sess, err := tokens.Issue(*address, uuid.NewString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error issuing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Address:", sess.Address)
	fmt.Println("Expires:", sess.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Printf("curl -H 'Authorization: Bearer %s' http://localhost:%d/api/auth/verify\n", token, cfg.Server.Port)
}
