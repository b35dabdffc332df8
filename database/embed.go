// Package database embed dosyası — migration SQL dosyalarını binary'ye gömer.
// Deploy edilen binary yanında migration dosyalarına ihtiyaç duymaz.
package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, migrations/ dizinini kök olarak döner.
// New() fonksiyonuna doğrudan verilebilir.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// go:embed pattern'ı ile dizin adı sabit — buraya düşmek imkânsız.
		panic(err)
	}
	return sub
}
