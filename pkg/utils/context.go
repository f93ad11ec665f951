package utils

import (
	"context"
)

type contextKey string

const (
	EmailKey contextKey = "email"
	NameKey  contextKey = "name"
)

// SetUserContext stores the verified caller identity on the request context
func SetUserContext(ctx context.Context, email, name string) context.Context {
	ctx = context.WithValue(ctx, EmailKey, email)
	ctx = context.WithValue(ctx, NameKey, name)
	return ctx
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

func GetNameFromContext(ctx context.Context) (string, bool) {
	nameVal := ctx.Value(NameKey)
	if nameVal == nil {
		return "", false
	}

	name, ok := nameVal.(string)
	return name, ok
}
