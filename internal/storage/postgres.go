package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Postgres is the durable Store for deployments that outlive a Redis flush.
//
// Schema:
//
//	CREATE TABLE IF NOT EXISTS session_state (
//	    key        TEXT PRIMARY KEY,
//	    value      JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type Postgres struct {
	db     *sqlx.DB
	logger logger.ZapLogger
}

func NewPostgres(db *sqlx.DB, log logger.ZapLogger) *Postgres {
	return &Postgres{db: db, logger: log}
}

func (p *Postgres) Get(ctx context.Context, key string, dest interface{}) bool {
	var raw []byte
	err := p.db.GetContext(ctx, &raw, `SELECT value FROM session_state WHERE key = $1`, key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			p.logger.Warn("storage: postgres get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		p.logger.Warn("storage: corrupt value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (p *Postgres) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		p.logger.Warn("storage: marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	query := `
        INSERT INTO session_state (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
    `
	if _, err := p.db.ExecContext(ctx, query, key, raw); err != nil {
		p.logger.Warn("storage: postgres set failed", zap.String("key", key), zap.Error(err))
	}
}

func (p *Postgres) Remove(ctx context.Context, key string) {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = $1`, key); err != nil {
		p.logger.Warn("storage: postgres del failed", zap.String("key", key), zap.Error(err))
	}
}

func (p *Postgres) Clear(ctx context.Context) {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM session_state`); err != nil {
		p.logger.Warn("storage: postgres clear failed", zap.Error(err))
	}
}
