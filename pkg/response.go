package pkg

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/akinalp/antren/pkg/i18n"
)

// Envelope, tüm API yanıtlarının ortak JSON şekli.
//
// Data ve Meta interface olduğu için omitempty sadece nil'i atlar: boş bir
// map (`{}`) bilinçli olarak serialize edilir — maskelenen hata yanıtları
// buna dayanır.
type Envelope struct {
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Meta    any      `json:"meta,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Responder, tek bir istek için yanıt yazan yardımcı. Dili istekten çözer,
// mesaj anahtarlarını çevirir ve envelope'u oluşturur.
type Responder struct {
	w   http.ResponseWriter
	loc *i18n.Localizer
}

// NewResponder, isteğin diline göre Responder oluşturur.
func NewResponder(w http.ResponseWriter, r *http.Request) *Responder {
	return &Responder{w: w, loc: i18n.FromRequest(r)}
}

// SuccessOpts, başarı yanıtının opsiyonel alanları.
type SuccessOpts struct {
	Status int            // sıfırsa 200
	Params map[string]any // mesaj şablonu parametreleri
	Data   any
	Meta   any
}

// ErrorOpts, hata yanıtının opsiyonel alanları.
type ErrorOpts struct {
	Status int            // sıfırsa 500
	Params map[string]any // mesaj şablonu parametreleri
	Data   any
	Meta   any
	Err    error // loglanacak asıl sebep
}

// Success, verilen anahtarı çevirip başarı yanıtı yazar.
func (rp *Responder) Success(messageKey string, opts SuccessOpts) {
	status := opts.Status
	if status == 0 {
		status = http.StatusOK
	}

	writeJSON(rp.w, status, Envelope{
		Message: rp.loc.TWithParams(messageKey, opts.Params),
		Data:    opts.Data,
		Meta:    opts.Meta,
	})
}

// Error, hata yanıtı yazar.
//
// Maskeleme kuralı: çözümlenen status 500 ve üzeriyse istemciye asıl anahtar
// SIZMAZ — mesaj "common.generalError" çevirisine zorlanır, params düşer,
// data boş obje olur, meta yazılmaz. Verilen anahtar ve asıl hata sadece
// sunucu loguna gider. 500 altı status'larda anahtar, params, data ve meta
// olduğu gibi geçer.
func (rp *Responder) Error(messageKey string, opts ErrorOpts) {
	status := opts.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		log.Printf("[response] %s: %v", messageKey, opts.Err)

		writeJSON(rp.w, status, Envelope{
			Message: rp.loc.T("common.generalError"),
			Data:    map[string]any{},
		})
		return
	}

	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}

	writeJSON(rp.w, status, Envelope{
		Message: rp.loc.TWithParams(messageKey, opts.Params),
		Data:    data,
		Meta:    opts.Meta,
	})
}

// FromError, servis katmanından dönen hatayı yanıta çevirir.
// AppError ise taşıdığı status ve anahtar kullanılır; değilse hata
// fallbackKey ile 500 olarak maskelenir.
func (rp *Responder) FromError(err error, fallbackKey string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		rp.Error(appErr.MessageKey, ErrorOpts{
			Status: appErr.Status,
			Params: appErr.Params,
			Data:   appErr.Data,
			Err:    appErr.Err,
		})
		return
	}

	rp.Error(fallbackKey, ErrorOpts{Status: http.StatusInternalServerError, Err: err})
}

// ValidationError, giriş doğrulama hatalarını 400 olarak yazar.
// Her issue key çevrilir ve errors dizisine konur; data alanı yoktur.
func (rp *Responder) ValidationError(issueKeys []string) {
	translated := make([]string, 0, len(issueKeys))
	for _, key := range issueKeys {
		translated = append(translated, rp.loc.T(key))
	}

	writeJSON(rp.w, http.StatusBadRequest, Envelope{
		Message: rp.loc.T("common.validationError"),
		Errors:  translated,
	})
}

// WriteMessage, envelope kullanmadan düz bir mesaj yazar.
// Middleware'in "Unauthorized" ve "Access denied" yanıtları bunu kullanır.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[response] failed to encode body: %v", err)
	}
}
