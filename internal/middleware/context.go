package middleware

import "context"

type contextKey string

const (
	clientIPKey  contextKey = "client_ip"
	requestIDKey contextKey = "request_id"
)

// ClientIP returns the client address resolved by TrustedProxy.
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// RequestID returns the id assigned by the RequestID middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
