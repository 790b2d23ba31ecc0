package middleware

import "context"

type contextKey string

const (
	ContextUserID contextKey = "userID"
	ContextRole   contextKey = "role"
	ContextToken  contextKey = "token"
)

func GetUserID(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextUserID).(string)
	return val, ok
}

func GetRole(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(ContextRole).(string)
	return val, ok
}
