package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/0xNexuz/Tempocash/pkg/app/errors"
	apphttp "github.com/0xNexuz/Tempocash/pkg/app/http"
)

// RequireMerchant rejects requests without a valid bearer token and stores
// the token subject as the merchant identity. An unconfigured validator lets
// every request through.
func RequireMerchant(v *JWTValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if v == nil || !v.IsConfigured() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}

			merchant, err := v.ValidateToken(r.Context(), strings.TrimSpace(raw))
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithMerchant(r.Context(), merchant)))
		})
	}
}
