// Package i18n, API yanıtları için çoklu dil desteği sağlar.
//
// Mesajlar "dot notation" anahtarlarla aranır (ör: "exercise.notFound").
// Dil, isteğin `language` header'ından belirlenir; desteklenmeyen veya
// eksik değer varsayılan dile düşer.
//
// Kullanım:
//
//	loc := i18n.FromRequest(r)
//	msg := loc.T("auth.errors.invalidCredentials")
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
)

// SupportedLanguages — desteklenen dil kodları.
var SupportedLanguages = []string{"en", "sk"}

// DefaultLanguage — varsayılan dil.
const DefaultLanguage = "en"

// translations, tüm çevirileri bellekte tutan harita: map[lang]map[key]value.
// Uygulama başlangıcında bir kere yüklenir, sonra sadece okunur — bu yüzden
// mutex'e gerek kalmadan tüm goroutine'ler güvenle okuyabilir.
var (
	translations map[string]map[string]string
	loadOnce     sync.Once
)

// Load, çeviri dosyalarını fs.FS'ten yükler.
// Her dil için bir JSON dosyası beklenir: en.json, sk.json.
// sync.Once sayesinde sadece ilk çağrı yükleme yapar.
func Load(localesFS fs.FS) error {
	var loadErr error

	loadOnce.Do(func() {
		translations = make(map[string]map[string]string)

		for _, lang := range SupportedLanguages {
			fileName := lang + ".json"

			data, err := fs.ReadFile(localesFS, fileName)
			if err != nil {
				loadErr = fmt.Errorf("failed to read translation file %s: %w", fileName, err)
				return
			}

			// Nested JSON'u flat key'lere dönüştür:
			// {"exercise": {"notFound": "..."}} → "exercise.notFound"
			var nested map[string]any
			if err := json.Unmarshal(data, &nested); err != nil {
				loadErr = fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
				return
			}

			flat := make(map[string]string)
			flattenMap("", nested, flat)
			translations[lang] = flat

			log.Printf("[i18n] loaded %d keys for language: %s", len(flat), lang)
		}
	})

	return loadErr
}

// Localizer, belirli bir dil için çeviri yapan struct.
type Localizer struct {
	lang string
}

// NewLocalizer, belirli bir dil için Localizer oluşturur.
// Desteklenmeyen dil verilirse varsayılana düşer.
func NewLocalizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang}
}

// FromRequest, isteğin `language` header'ına göre Localizer oluşturur.
// Header lowercase'e çevrilir; "en" ve "sk" dışındaki her değer
// (eksik dahil) varsayılan dile düşer.
func FromRequest(r *http.Request) *Localizer {
	return NewLocalizer(strings.ToLower(r.Header.Get("language")))
}

// Lang, localizer'ın çözümlenmiş dilini döner.
func (l *Localizer) Lang() string {
	return l.lang
}

// T, çeviri anahtarına karşılık gelen metni döner.
// Anahtar bulunamazsa → varsayılan dile düşer.
// Orada da yoksa → anahtarın kendisini döner, ASLA hata üretmez.
// (Ara bir node'a denk gelen anahtar — ör: "exercise" — flat haritada
// bulunmaz, dolayısıyla o da anahtarın kendisi olarak döner.)
func (l *Localizer) T(key string) string {
	if msg, ok := translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := translations[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// placeholderRe, {name} biçimindeki yer tutucuları yakalar.
var placeholderRe = regexp.MustCompile(`\{(\w+)\}`)

// TWithParams, parametreli çeviri yapar: şablondaki {name} yer tutucuları
// params değerleriyle değiştirilir. Eksik veya nil parametre boş string
// olarak interpolate edilir.
//
// Örnek:
//
//	loc.TWithParams("exercise.created", map[string]any{"name": "Push up"})
//	→ `Exercise "Push up" created`
func (l *Localizer) TWithParams(key string, params map[string]any) string {
	msg := l.T(key)

	return placeholderRe.ReplaceAllStringFunc(msg, func(match string) string {
		name := match[1 : len(match)-1]
		val, ok := params[name]
		if !ok || val == nil {
			return ""
		}
		return fmt.Sprint(val)
	})
}

// ─── Helpers ───

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// flattenMap, nested JSON'u "dot notation" key'lere dönüştürür.
// String olmayan yaprak değerler (sayı, bool, dizi) atlanır.
func flattenMap(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flattenMap(key, val, dst)
		}
	}
}
