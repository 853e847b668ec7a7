// Package db holds the SQL schema migrations, embedded for builds that ship
// without the source tree.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
