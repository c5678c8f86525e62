package repository

import (
	"context"

	"vespa-academy/domain/model"
)

// VideoWrite carries the persisted fields of a video on the write path.
type VideoWrite struct {
	Platform   model.Platform
	PlatformID string
	Title      string
	Keywords   string
}

// IVideoAdmin is the write side of video curation. Assignment writes run
// inside one transaction; rows hitting a uniqueness or foreign-key
// violation are skipped and reported as warnings while siblings proceed.
type IVideoAdmin interface {
	// FindVideoID resolves the (platform, platform_id) natural key.
	// Returns model.ErrNotFound for an unseen pair.
	FindVideoID(ctx context.Context, platform model.Platform, platformID string) (int64, error)
	InsertVideo(ctx context.Context, w VideoWrite) (int64, error)
	UpdateVideo(ctx context.Context, videoID int64, w VideoWrite) error
	// DeleteVideo removes the row and cascades its category, problem and
	// series assignment rows in the same transaction.
	DeleteVideo(ctx context.Context, videoID int64) error
	// MergeAssignments adds the given links without removing existing ones.
	MergeAssignments(ctx context.Context, videoID int64, categoryKeys, seriesKeys []string) ([]model.ConstraintWarning, error)
	// ReplaceAssignments clears the video's category and series links and
	// writes the given ones; empty slices clear without replacement.
	ReplaceAssignments(ctx context.Context, videoID int64, categoryKeys, seriesKeys []string) ([]model.ConstraintWarning, error)
	// ReplaceProblems rewrites the video's problem links wholesale.
	ReplaceProblems(ctx context.Context, videoID int64, problemIDs []int64) ([]model.ConstraintWarning, error)
}

// ICategoryAdmin is the write side of category curation.
type ICategoryAdmin interface {
	CreateCategory(ctx context.Context, c CategoryRow) error
	UpdateCategory(ctx context.Context, c CategoryRow) error
	// DeleteCategory removes the category and its assignment rows.
	DeleteCategory(ctx context.Context, key string) error
}
