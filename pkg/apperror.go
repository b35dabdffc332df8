package pkg

import "fmt"

// AppError, servis katmanının beklenen hata durumlarını taşıyan tip.
// HTTP status'u ve çeviri anahtarını birlikte taşır; handler'lar bu
// bilgiyi Responder.FromError üzerinden envelope'a çevirir.
//
// 500 ve üzeri status'lar response katmanında maskelenir: istemci sadece
// genel hata mesajını görür, asıl sebep loglanır.
type AppError struct {
	// Status, yanıtın HTTP status kodu.
	Status int

	// MessageKey, i18n çeviri anahtarı (ör: "auth.errors.emailTaken").
	MessageKey string

	// Params, mesaj şablonundaki {name} yer tutucuları için değerler.
	Params map[string]any

	// Data, envelope'un data alanına yazılacak payload (opsiyonel).
	Data any

	// Err, sarmalanan alt hata. Maskelenen yanıtlarda loglanır.
	Err error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.MessageKey, e.Err)
	}
	return e.MessageKey
}

// Unwrap, errors.Is/As zincirinin alt hataya ulaşmasını sağlar.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ─── Constructor'lar ───
//
// Servis kodunu kısa tutmak için sık kullanılan status'lara kısayollar.

// NotFound, 404 döndüren AppError oluşturur.
func NotFound(messageKey string) *AppError {
	return &AppError{Status: 404, MessageKey: messageKey}
}

// Conflict, 409 döndüren AppError oluşturur.
func Conflict(messageKey string) *AppError {
	return &AppError{Status: 409, MessageKey: messageKey}
}

// BadRequest, 400 döndüren AppError oluşturur.
func BadRequest(messageKey string) *AppError {
	return &AppError{Status: 400, MessageKey: messageKey}
}

// Unauthorized, 401 döndüren AppError oluşturur.
func Unauthorized(messageKey string) *AppError {
	return &AppError{Status: 401, MessageKey: messageKey}
}

// Config, eksik yapılandırmadan kaynaklanan 500 hatası oluşturur.
// Maskeleme sayesinde istemci anahtarı değil genel mesajı görür.
func Config(messageKey string, err error) *AppError {
	return &AppError{Status: 500, MessageKey: messageKey, Err: err}
}

// Internal, beklenmeyen bir alt hatayı 500 olarak sarmalar.
func Internal(messageKey string, err error) *AppError {
	return &AppError{Status: 500, MessageKey: messageKey, Err: err}
}
