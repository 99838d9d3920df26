// Package migrations embeds the versioned schema files so the server
// binary carries its own schema history.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed *.sql
var files embed.FS

func FS() fs.FS {
	return files
}
