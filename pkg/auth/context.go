package auth

import "context"

type contextKey string

// ContextKeyMerchant is the context key for the authenticated merchant subject
const ContextKeyMerchant contextKey = "merchant"

// WithMerchant adds the merchant subject to the context
func WithMerchant(ctx context.Context, merchant string) context.Context {
	return context.WithValue(ctx, ContextKeyMerchant, merchant)
}

// MerchantFromContext retrieves the merchant subject from the context
func MerchantFromContext(ctx context.Context) (string, bool) {
	m, ok := ctx.Value(ContextKeyMerchant).(string)
	return m, ok && m != ""
}
