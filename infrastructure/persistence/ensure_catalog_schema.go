package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureCatalogSchema creates the catalog tables if they are missing.
// Safe to call at every startup.
func EnsureCatalogSchema(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			position SERIAL
		)`,
		`CREATE TABLE IF NOT EXISTS videos (
			id BIGSERIAL PRIMARY KEY,
			platform TEXT NOT NULL,
			platform_id TEXT NOT NULL,
			title TEXT NOT NULL,
			keywords TEXT NOT NULL DEFAULT '',
			view_count INTEGER NOT NULL DEFAULT 0,
			likes INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (platform, platform_id)
		)`,
		`CREATE TABLE IF NOT EXISTS problems (
			id BIGSERIAL PRIMARY KEY,
			text TEXT NOT NULL,
			theme TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS series (
			id BIGSERIAL PRIMARY KEY,
			key TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			is_featured BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS video_categories (
			video_id BIGINT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
			category_key TEXT NOT NULL REFERENCES categories(key) ON DELETE CASCADE,
			PRIMARY KEY (video_id, category_key)
		)`,
		`CREATE TABLE IF NOT EXISTS video_problems (
			video_id BIGINT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
			problem_id BIGINT NOT NULL REFERENCES problems(id) ON DELETE CASCADE,
			PRIMARY KEY (video_id, problem_id)
		)`,
		`CREATE TABLE IF NOT EXISTS video_series (
			video_id BIGINT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
			series_id BIGINT NOT NULL REFERENCES series(id) ON DELETE CASCADE,
			display_order INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (video_id, series_id)
		)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			id BIGSERIAL PRIMARY KEY,
			user_name TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, ddl := range stmts {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensuring catalog schema: %w", err)
		}
	}
	return nil
}
