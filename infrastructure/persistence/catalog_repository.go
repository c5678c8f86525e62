package persistence

import (
	"context"
	"database/sql"

	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
)

// CatalogRepository implements the catalog read side over PostgreSQL.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) repository.ICatalog {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) GetCategories(ctx context.Context) ([]repository.CategoryRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, name, color, description, icon FROM categories ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.CategoryRow
	for rows.Next() {
		var c repository.CategoryRow
		if err := rows.Scan(&c.Key, &c.Name, &c.Color, &c.Description, &c.Icon); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CatalogRepository) GetVideos(ctx context.Context) ([]*model.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, platform, platform_id, title, keywords, view_count, likes, created_at FROM videos ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*model.Video
	for rows.Next() {
		v := &model.Video{}
		if err := rows.Scan(&v.ID, &v.Platform, &v.PlatformID, &v.Title, &v.Keywords, &v.ViewCount, &v.Likes, &v.CreatedAt); err != nil {
			return nil, err
		}
		// Timestamps compare against a UTC "now" in the freshness filter
		v.CreatedAt = v.CreatedAt.UTC()
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *CatalogRepository) GetCategoryAssignments(ctx context.Context) ([]repository.CategoryAssignmentRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT video_id, category_key FROM video_categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.CategoryAssignmentRow
	for rows.Next() {
		var a repository.CategoryAssignmentRow
		if err := rows.Scan(&a.VideoID, &a.CategoryKey); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *CatalogRepository) GetProblemAssignments(ctx context.Context) ([]repository.ProblemAssignmentRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT vp.video_id, p.text, p.theme FROM video_problems vp JOIN problems p ON p.id = vp.problem_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.ProblemAssignmentRow
	for rows.Next() {
		var a repository.ProblemAssignmentRow
		if err := rows.Scan(&a.VideoID, &a.Text, &a.Theme); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// IncrementLikes relies on the server-side increment for atomicity under
// concurrent likes; the counter is never read-modify-written here.
func (r *CatalogRepository) IncrementLikes(ctx context.Context, videoID int64) (int, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE videos SET likes = likes + 1 WHERE id = $1 RETURNING likes`, videoID)
	var likes int
	if err := row.Scan(&likes); err != nil {
		if err == sql.ErrNoRows {
			return 0, model.ErrNotFound
		}
		return 0, err
	}
	return likes, nil
}
