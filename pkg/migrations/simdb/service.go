// Package simdb holds the migrations of the simulation database
package simdb

import "github.com/uptrace/bun/migrate"

// Migrations is the registry of simulation database migrations.
var Migrations = migrate.NewMigrations()
