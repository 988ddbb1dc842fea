package usercontext

import "context"

// UserContext явный контекст пользовательской сессии
// Никакого скрытого глобального состояния: идентичность кладётся
// в context.Context middleware-ом и читается отсюда
type UserContext struct {
	UserID   string
	Username string
}

type ctxKey struct{}

// WithContext кладет пользовательский контекст в context.Context
func WithContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, uc)
}

// FromContext извлекает пользовательский контекст
func FromContext(ctx context.Context) (*UserContext, bool) {
	uc, ok := ctx.Value(ctxKey{}).(*UserContext)
	return uc, ok
}
