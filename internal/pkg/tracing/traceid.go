// Package tracing связывает запуск ufe с trace ID и OpenTelemetry.
//
// Trace ID — 32-символьный hex (16 байт), совместимый с W3C Trace Context:
//
//	traceID := tracing.GenerateTraceID()
//	ctx = tracing.WithTraceID(ctx, traceID)
//	logger.With("trace_id", tracing.TraceIDFromContext(ctx)).Info("команда запущена")
package tracing

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var fallbackCounter atomic.Uint64

// GenerateTraceID генерирует случайный trace ID через crypto/rand.
// Если crypto/rand недоступен, ID строится из времени и счётчика.
func GenerateTraceID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// fallbackTraceID всегда возвращает ровно 32 hex-символа: %016x для каждой половины.
func fallbackTraceID() string {
	counter := fallbackCounter.Add(1)
	timestamp := uint64(time.Now().UnixNano()) //nolint:gosec // только для уникальности
	return fmt.Sprintf("%016x%016x", timestamp, counter)
}

type traceIDKey struct{}

// WithTraceID возвращает context с trace ID.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceIDFromContext извлекает trace ID из context.
// Возвращает пустую строку если trace ID не установлен или context == nil.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}
