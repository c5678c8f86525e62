package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"

	"github.com/lib/pq"
)

// VideoAdminRepository implements the video and category write paths.
type VideoAdminRepository struct {
	db *sql.DB
}

func NewVideoAdminRepository(db *sql.DB) *VideoAdminRepository {
	return &VideoAdminRepository{db: db}
}

func (r *VideoAdminRepository) FindVideoID(ctx context.Context, platform model.Platform, platformID string) (int64, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id FROM videos WHERE platform = $1 AND platform_id = $2`, platform, platformID)
	var id int64
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return 0, model.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *VideoAdminRepository) InsertVideo(ctx context.Context, w repository.VideoWrite) (int64, error) {
	row := r.db.QueryRowContext(ctx, `INSERT INTO videos (platform, platform_id, title, keywords) VALUES ($1, $2, $3, $4) RETURNING id`,
		w.Platform, w.PlatformID, w.Title, w.Keywords)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting video: %w", err)
	}
	return id, nil
}

func (r *VideoAdminRepository) UpdateVideo(ctx context.Context, videoID int64, w repository.VideoWrite) error {
	res, err := r.db.ExecContext(ctx, `UPDATE videos SET platform = $1, platform_id = $2, title = $3, keywords = $4 WHERE id = $5`,
		w.Platform, w.PlatformID, w.Title, w.Keywords, videoID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteVideo removes the video and its category, problem and series
// assignment rows in one transaction.
func (r *VideoAdminRepository) DeleteVideo(ctx context.Context, videoID int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, q := range []string{
		`DELETE FROM video_categories WHERE video_id = $1`,
		`DELETE FROM video_problems WHERE video_id = $1`,
		`DELETE FROM video_series WHERE video_id = $1`,
	} {
		if _, err = tx.ExecContext(ctx, q, videoID); err != nil {
			return err
		}
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, videoID); err != nil {
		return err
	}
	if err = requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *VideoAdminRepository) MergeAssignments(ctx context.Context, videoID int64, categoryKeys, seriesKeys []string) (warnings []model.ConstraintWarning, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	warnings, err = insertAssignments(ctx, tx, videoID, categoryKeys, seriesKeys, nil)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return warnings, nil
}

func (r *VideoAdminRepository) ReplaceAssignments(ctx context.Context, videoID int64, categoryKeys, seriesKeys []string) (warnings []model.ConstraintWarning, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM video_categories WHERE video_id = $1`, videoID); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM video_series WHERE video_id = $1`, videoID); err != nil {
		return nil, err
	}
	warnings, err = insertAssignments(ctx, tx, videoID, categoryKeys, seriesKeys, nil)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return warnings, nil
}

func (r *VideoAdminRepository) ReplaceProblems(ctx context.Context, videoID int64, problemIDs []int64) (warnings []model.ConstraintWarning, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM video_problems WHERE video_id = $1`, videoID); err != nil {
		return nil, err
	}
	warnings, err = insertAssignments(ctx, tx, videoID, nil, nil, problemIDs)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return warnings, nil
}

// insertAssignments writes assignment rows one by one. A row referencing a
// missing category/series/problem is skipped and reported as a warning so
// its siblings still land; a failed statement inside the transaction is an
// unexpected error and bubbles up for rollback. Existence is checked up
// front because Postgres aborts the whole transaction on a constraint
// violation mid-flight.
func insertAssignments(ctx context.Context, tx *sql.Tx, videoID int64, categoryKeys, seriesKeys []string, problemIDs []int64) ([]model.ConstraintWarning, error) {
	var warnings []model.ConstraintWarning

	for _, key := range categoryKeys {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM categories WHERE key = $1`, key).Scan(&one)
		if err == sql.ErrNoRows {
			warnings = append(warnings, model.ConstraintWarning{Item: key, Reason: "category does not exist"})
			continue
		}
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO video_categories (video_id, category_key) VALUES ($1, $2) ON CONFLICT DO NOTHING`, videoID, key); err != nil {
			return nil, err
		}
	}

	for i, key := range seriesKeys {
		var seriesID int64
		err := tx.QueryRowContext(ctx, `SELECT id FROM series WHERE key = $1`, key).Scan(&seriesID)
		if err == sql.ErrNoRows {
			warnings = append(warnings, model.ConstraintWarning{Item: key, Reason: "series does not exist"})
			continue
		}
		if err != nil {
			return nil, err
		}
		// Appended members go after the current tail; replaced lists keep
		// their submitted order.
		if _, err := tx.ExecContext(ctx, `INSERT INTO video_series (video_id, series_id, display_order)
			SELECT $1, $2, COALESCE(MAX(display_order) + 1, $3) FROM video_series WHERE series_id = $2
			ON CONFLICT DO NOTHING`, videoID, seriesID, i); err != nil {
			return nil, err
		}
	}

	for _, pid := range problemIDs {
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM problems WHERE id = $1`, pid).Scan(&one)
		if err == sql.ErrNoRows {
			warnings = append(warnings, model.ConstraintWarning{Item: fmt.Sprintf("problem %d", pid), Reason: "problem does not exist"})
			continue
		}
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO video_problems (video_id, problem_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, videoID, pid); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}

func (r *VideoAdminRepository) CreateCategory(ctx context.Context, c repository.CategoryRow) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO categories (key, name, color, description, icon) VALUES ($1, $2, $3, $4, $5)`,
		c.Key, c.Name, c.Color, c.Description, c.Icon)
	return classifyWriteError(err, c.Key)
}

func (r *VideoAdminRepository) UpdateCategory(ctx context.Context, c repository.CategoryRow) error {
	res, err := r.db.ExecContext(ctx, `UPDATE categories SET name = $1, color = $2, description = $3, icon = $4 WHERE key = $5`,
		c.Name, c.Color, c.Description, c.Icon, c.Key)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *VideoAdminRepository) DeleteCategory(ctx context.Context, key string) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM video_categories WHERE category_key = $1`, key); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM categories WHERE key = $1`, key); err != nil {
		return err
	}
	if err = requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

// classifyWriteError maps Postgres constraint codes onto advisory errors.
func classifyWriteError(err error, item string) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return fmt.Errorf("%s already exists", item)
		case "23503":
			return fmt.Errorf("%s references a missing row", item)
		}
	}
	return err
}
