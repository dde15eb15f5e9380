package cache

import (
	"time"

	"github.com/uptrace/bun"
)

// EntryDao maps to the 'cache_entries' table used by the postgres backend.
type EntryDao struct {
	bun.BaseModel `bun:"table:cache_entries,alias:ce"`
	Key           string     `bun:"key,pk,type:varchar(512)"`
	Value         string     `bun:"value,notnull,type:text"`
	ExpiresAt     *time.Time `bun:"expires_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
