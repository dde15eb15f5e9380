package cachedb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/rwadex/rwa-dex-api/pkg/cache"
	mghelper "github.com/rwadex/rwa-dex-api/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating cache_entries table...")
		if err := mghelper.CreateSchema(ctx, db, &cache.EntryDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &cache.EntryDao{}, "expires_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping cache_entries table...")
		return mghelper.DropTables(ctx, db, &cache.EntryDao{})
	})
}
