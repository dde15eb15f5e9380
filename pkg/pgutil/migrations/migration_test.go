package migrations

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/rwadex/rwa-dex-api/pkg/config"
	"github.com/rwadex/rwa-dex-api/pkg/pgutil"
)

type snapshotDao struct {
	bun.BaseModel `bun:"table:price_snapshots"`
	ID            int64     `bun:",pk,autoincrement"`
	Token         string    `bun:",notnull,type:varchar(42)"`
	TakenAt       time.Time `bun:",notnull"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := pgutil.ConnectDB(ctx, cfg)
	if err == nil {
		db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestRunMigrations_NoCommand(t *testing.T) {
	if err := RunMigrations(context.Background(), nil); err == nil {
		t.Error("expected error when no command is given")
	}
}

func TestCreateAndDropSchema(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "price_snapshots")

	// Idempotent
	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "price_snapshots")

	if err := DropTables(ctx, db, &snapshotDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestCreateModelIndexes(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateModelIndexes(ctx, db, &snapshotDao{}, "token", "taken_at"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}

	pgutil.AssertIndexExists(t, db, "idx_price_snapshots_token")
	pgutil.AssertIndexExists(t, db, "idx_price_snapshots_taken_at")
}
