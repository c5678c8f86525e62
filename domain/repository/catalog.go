package repository

import (
	"context"

	"vespa-academy/domain/model"
)

// CategoryRow is a category as stored, before the loader attaches videos.
type CategoryRow struct {
	Key         string
	Name        string
	Color       string
	Description string
	Icon        string
}

// CategoryAssignmentRow links a video to a category.
type CategoryAssignmentRow struct {
	VideoID     int64
	CategoryKey string
}

// ProblemAssignmentRow links a video to a problem, already joined with the
// problem's text and theme since the catalog never needs the problem id.
type ProblemAssignmentRow struct {
	VideoID int64
	Text    string
	Theme   string
}

// ICatalog is the read side of the catalog plus the single like hotspot.
type ICatalog interface {
	GetCategories(ctx context.Context) ([]CategoryRow, error)
	GetVideos(ctx context.Context) ([]*model.Video, error)
	GetCategoryAssignments(ctx context.Context) ([]CategoryAssignmentRow, error)
	GetProblemAssignments(ctx context.Context) ([]ProblemAssignmentRow, error)
	// IncrementLikes bumps the counter server-side and returns the new
	// value. Returns model.ErrNotFound for an unknown video.
	IncrementLikes(ctx context.Context, videoID int64) (int, error)
}
