// Package migrations embeds the SQL schema so the binary can migrate the
// database it connects to without external files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
