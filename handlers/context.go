// Package handlers, HTTP isteklerini karşılayan katmandır.
//
// Handler'ların işi dardır: isteği parse et, doğrula, servisi çağır,
// yanıtı envelope ile yaz. İş kuralı handler'da yaşamaz.
package handlers

import (
	"context"

	"github.com/akinalp/antren/models"
)

// contextKey, context.WithValue çakışmalarını önleyen private tip.
// String key kullanmak tehlikelidir — başka bir paket aynı string'i
// kullanabilir. Private tip bunu derleme zamanında imkansız kılar.
type contextKey string

// PrincipalContextKey, auth middleware'in doğrulanmış kimliği koyduğu key.
const PrincipalContextKey contextKey = "principal"

// RequestIDContextKey, request id middleware'inin ürettiği id'nin key'i.
const RequestIDContextKey contextKey = "requestID"

// PrincipalFromContext, context'teki doğrulanmış kimliği döner.
// Auth middleware'den geçmemiş bir route'ta çağrılırsa ok=false döner.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(PrincipalContextKey).(*models.Principal)
	return p, ok
}
