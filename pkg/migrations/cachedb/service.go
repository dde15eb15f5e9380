// Package cachedb holds the migrations for the postgres cache backend
package cachedb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set registered by the numbered files in this package.
var Migrations = migrate.NewMigrations()
