//go:build ignore

// wallet-login.go signs in to a running API with a wallet key and prints the
// session plus the first page of assets as that wallet sees them.
//
// Usage:
//   PRIVATE_KEY=<hex> go run scripts/wallet-login.go -api http://localhost:3001

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/rwadex/rwa-dex-api/pkg/asset"
	"github.com/rwadex/rwa-dex-api/pkg/client"
)

var (
	apiURL  = flag.String("api", "http://localhost:3001", "API base URL")
	limit   = flag.Int("limit", 5, "Assets to list")
	logout  = flag.Bool("logout", false, "Disconnect after listing")
	timeout = flag.Duration("timeout", 30*time.Second, "Overall timeout")
)

func main() {
	flag.Parse()

	keyHex := strings.TrimPrefix(os.Getenv("PRIVATE_KEY"), "0x")
	if keyHex == "" {
		fmt.Fprintln(os.Stderr, "Error: PRIVATE_KEY is required")
		os.Exit(1)
	}
	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing key: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c, err := client.New(*apiURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	conn, err := c.Login(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Signed in as %s (expires in %s)\n", conn.Address, conn.ExpiresIn)

	res, err := c.ListAssets(ctx, asset.Query{Limit: *limit, SortBy: "tvl", SortOrder: asset.SortDesc})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listing failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d assets, page %d/%d\n", res.Pagination.TotalItems, res.Pagination.CurrentPage, res.Pagination.TotalPages)
	for _, a := range res.Assets {
		detail, err := c.GetAsset(ctx, a.Address)
		if err != nil {
			fmt.Printf("  %-8s %s  (detail failed: %v)\n", a.Symbol, a.Address, err)
			continue
		}
		canTrade := detail.UserCanTrade != nil && *detail.UserCanTrade
		fmt.Printf("  %-8s %-12s apy=%.2f%% tvl=%s tradable=%t\n", a.Symbol, a.AssetType, a.APY, a.TVL, canTrade)
	}

	if *logout {
		if err := c.Disconnect(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Disconnect failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Disconnected")
	}
}
