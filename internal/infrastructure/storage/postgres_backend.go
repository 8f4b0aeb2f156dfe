package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khakhra/business-manager/pkg/config"
)

// PostgresBackend persiste las colecciones en una única tabla llave-valor
// JSONB. La semántica es idéntica a la del backend de archivo: un documento
// por colección, reemplazo completo por escritura (un solo upsert, atómico).
type PostgresBackend struct {
	pool *pgxpool.Pool
}

const createCollectionsTable = `
CREATE TABLE IF NOT EXISTS collections (
    name       TEXT PRIMARY KEY,
    records    JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgresBackend crea el pool de conexiones y garantiza el esquema.
func NewPostgresBackend(ctx context.Context, cfg config.DBConfig) (*PostgresBackend, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("storage: parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	// Codec NUMERIC/DECIMAL -> shopspring/decimal en todas las conexiones.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("storage: crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: ping DB: %w", err)
	}
	if _, err := pool.Exec(ctx, createCollectionsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: crear esquema: %w", err)
	}
	return &PostgresBackend{pool: pool}, nil
}

// Close cierra el pool.
func (b *PostgresBackend) Close() {
	b.pool.Close()
}

func (b *PostgresBackend) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := b.pool.QueryRow(ctx,
		`SELECT records FROM collections WHERE name = $1`, key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	return data, true, nil
}

func (b *PostgresBackend) Write(ctx context.Context, key string, data []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO collections (name, records, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET records = EXCLUDED.records, updated_at = now()`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	return nil
}

func (b *PostgresBackend) Delete(ctx context.Context, key string) error {
	_, err := b.pool.Exec(ctx, `DELETE FROM collections WHERE name = $1`, key)
	if err != nil {
		return fmt.Errorf("storage: eliminar %s: %w", key, err)
	}
	return nil
}
