// Package cache define el caché opcional para respuestas de analítica. Con
// Redis configurado se usa RedisCache; si no, NoopCache (siempre miss).
package cache

import (
	"context"
	"time"
)

// SummaryCache guarda documentos JSON ya serializados bajo una llave.
type SummaryCache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// NoopCache es el caché nulo: nunca acierta, nunca falla.
type NoopCache struct{}

func (NoopCache) Get(_ context.Context, _ string) ([]byte, bool, error) { return nil, false, nil }

func (NoopCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error { return nil }
