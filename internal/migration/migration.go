// Package migration holds the SQLite schema for dashboard snapshots.
package migration

import _ "embed"

//go:embed create-tables.sql
var Create string
