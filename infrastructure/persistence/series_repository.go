package persistence

import (
	"context"
	"database/sql"

	"vespa-academy/domain/model"
)

// SeriesRepository implements both the featured-series read side and the
// series write side over PostgreSQL.
type SeriesRepository struct {
	db *sql.DB
}

func NewSeriesRepository(db *sql.DB) *SeriesRepository { return &SeriesRepository{db: db} }

func (r *SeriesRepository) GetFeatured(ctx context.Context) (*model.Series, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, key, name, description, is_featured FROM series WHERE is_featured = TRUE LIMIT 1`)
	s := &model.Series{}
	if err := row.Scan(&s.ID, &s.Key, &s.Name, &s.Description, &s.IsFeatured); err != nil {
		if err == sql.ErrNoRows {
			// No featured series is a normal state, not an error
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

const seriesMemberColumns = `v.id, v.platform, v.platform_id, v.title, v.keywords, v.view_count, v.likes, v.created_at`

func (r *SeriesRepository) GetMembersTop(ctx context.Context, seriesID int64, limit int) ([]*model.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+seriesMemberColumns+`
		FROM video_series vs JOIN videos v ON v.id = vs.video_id
		WHERE vs.series_id = $1
		ORDER BY v.likes DESC, vs.display_order ASC, v.id ASC
		LIMIT $2`, seriesID, limit)
	if err != nil {
		return nil, err
	}
	return scanSeriesMembers(rows)
}

func (r *SeriesRepository) GetMembersAll(ctx context.Context, seriesID int64) ([]*model.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+seriesMemberColumns+`
		FROM video_series vs JOIN videos v ON v.id = vs.video_id
		WHERE vs.series_id = $1
		ORDER BY vs.display_order ASC, v.title ASC, v.id ASC`, seriesID)
	if err != nil {
		return nil, err
	}
	return scanSeriesMembers(rows)
}

func scanSeriesMembers(rows *sql.Rows) ([]*model.Video, error) {
	defer rows.Close()
	var list []*model.Video
	for rows.Next() {
		v := &model.Video{}
		if err := rows.Scan(&v.ID, &v.Platform, &v.PlatformID, &v.Title, &v.Keywords, &v.ViewCount, &v.Likes, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.CreatedAt = v.CreatedAt.UTC()
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *SeriesRepository) CreateSeries(ctx context.Context, s model.Series) (int64, error) {
	row := r.db.QueryRowContext(ctx, `INSERT INTO series (key, name, description, is_featured) VALUES ($1, $2, $3, FALSE) RETURNING id`,
		s.Key, s.Name, s.Description)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SeriesRepository) UpdateSeries(ctx context.Context, s model.Series) error {
	res, err := r.db.ExecContext(ctx, `UPDATE series SET name = $1, description = $2 WHERE key = $3`,
		s.Name, s.Description, s.Key)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *SeriesRepository) DeleteSeries(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM series WHERE key = $1`, key)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetFeatured flags one series and clears the previous holder in the same
// transaction, so at most one series carries the flag at any time.
func (r *SeriesRepository) SetFeatured(ctx context.Context, key string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `UPDATE series SET is_featured = FALSE WHERE is_featured = TRUE`); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `UPDATE series SET is_featured = TRUE WHERE key = $1`, key); err != nil {
		return err
	}
	if err = requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
