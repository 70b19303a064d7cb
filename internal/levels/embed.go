package levels

import (
	"embed"
	"io/fs"
)

//go:embed data
var embedded embed.FS

// Embedded returns the built-in level files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // the embed directive guarantees data exists
	}
	return sub
}
