// Package pkg, katmanlar arasında paylaşılan hata tipleri ve HTTP yanıt
// yardımcılarını içerir.
package pkg

import "errors"

// Sentinel hatalar — repository katmanı bu hataları döner, üst katmanlar
// errors.Is ile kontrol eder. fmt.Errorf("%w: detay", ErrNotFound) şeklinde
// sarmalanarak bağlam eklenebilir.
var (
	// ErrNotFound, aranan kayıt bulunamadığında döner.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists, UNIQUE kısıtı ihlal edildiğinde döner.
	ErrAlreadyExists = errors.New("already exists")
)
