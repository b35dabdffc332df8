// Package validation, istek gövdelerini ve parametrelerini doğrular.
//
// Her parse fonksiyonu saf çalışır: girdiyi alır, (tipli değer, issue key
// listesi) döner. Issue key'ler i18n çeviri anahtarlarıdır; handler bunları
// ValidationError'a verir. Liste boş değilse tipli değer kullanılmamalıdır.
//
// JSON gövdeler map[string]json.RawMessage üzerinden alan alan parse edilir.
// Böylece union tipler (ör: age hem sayı hem sayısal string olabilir) ve
// strict şemalar (bilinmeyen alan reddi) tek mekanizmayla desteklenir.
// Bozuk JSON tek bir "invalidBody" issue'su üretir.
package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Issue key'ler — locale dosyalarındaki validation.common.* anahtarları.
const (
	keyInvalidBody = "validation.common.invalidBody"
)

// parseObject, gövdeyi alan haritasına çevirir. Bozuk JSON veya obje
// olmayan üst seviye değer (dizi, sayı, null) invalidBody sayılır.
func parseObject(body []byte) (map[string]json.RawMessage, []string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, []string{keyInvalidBody}
	}
	return fields, nil
}

// asString, raw değeri string'e çevirir. String değilse ok=false döner.
func asString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// asNumber, raw değeri sayıya çevirir. Sayı değilse ok=false döner.
func asNumber(raw json.RawMessage) (float64, bool) {
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

// hasField, alanın istekte gelip gelmediğini kontrol eder.
// Gelmemiş alan ile null gelen alan farklı şeylerdir.
func hasField(fields map[string]json.RawMessage, key string) bool {
	_, ok := fields[key]
	return ok
}

// isNull, raw değerin JSON null olup olmadığını kontrol eder.
func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// parseAge, age alanının union tipini çözer:
//
//	yok            → nil, issue yok
//	null           → nil
//	""             → nil
//	sayısal string → sayıya çevrilir; negatif veya sayı değilse invalidAge
//	sayı           → negatifse ageMustBePositive
//	diğer tipler   → invalidAge
func parseAge(raw json.RawMessage, present bool) (*int64, []string) {
	if !present || isNull(raw) {
		return nil, nil
	}

	if s, ok := asString(raw); ok {
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f < 0 {
			return nil, []string{"validation.common.invalidAge"}
		}
		v := int64(f)
		return &v, nil
	}

	if f, ok := asNumber(raw); ok {
		if f < 0 {
			return nil, []string{"validation.common.ageMustBePositive"}
		}
		v := int64(f)
		return &v, nil
	}

	return nil, []string{"validation.common.invalidAge"}
}

// coerceNumber, sayı veya sayısal string'i float64'e çevirir.
// Diğer her tip (null dahil) başarısız sayılır.
func coerceNumber(raw json.RawMessage) (float64, bool) {
	if f, ok := asNumber(raw); ok {
		return f, true
	}
	if s, ok := asString(raw); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
