package middleware

import (
	"log"
	"net/http"

	"github.com/akinalp/antren/pkg/i18n"
)

// Recover, handler zincirinde oluşan panic'i yakalar ve isteği maskelenmiş
// bir 500 ile kapatır. Panic detayı sadece loga gider — istemci her zaman
// genel hata mesajını görür.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}

		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[recover] panic on %s %s: %v", r.Method, r.URL.Path, rec)

				// Header gitmişse artık temiz bir yanıt yazılamaz;
				// bağlantıyı olduğu gibi bırakmak tek seçenek.
				if sw.wroteHeader {
					return
				}

				loc := i18n.FromRequest(r)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"` + loc.T("common.generalError") + `","data":{}}`))
			}
		}()

		next.ServeHTTP(sw, r)
	})
}

// statusWriter, WriteHeader'ın çağrılıp çağrılmadığını izler.
type statusWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
