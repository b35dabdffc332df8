// Package i18n embed dosyası — çeviri JSON dosyalarını binary'ye gömer.
package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// LoadEmbedded, binary'ye gömülü locale dosyalarını yükler.
// main.go ve testler bunu çağırır.
func LoadEmbedded() error {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return err
	}
	return Load(sub)
}
