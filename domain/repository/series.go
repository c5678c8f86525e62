package repository

import (
	"context"

	"vespa-academy/domain/model"
)

// ISeries reads the featured series and its member views. Member queries
// go through the video_series relation directly; a video does not need a
// category to appear in a series.
type ISeries interface {
	// GetFeatured returns (nil, nil) when no series is flagged.
	GetFeatured(ctx context.Context) (*model.Series, error)
	// GetMembersTop orders by likes desc, display_order asc, id asc.
	GetMembersTop(ctx context.Context, seriesID int64, limit int) ([]*model.Video, error)
	// GetMembersAll orders by display_order asc, title asc, id asc.
	GetMembersAll(ctx context.Context, seriesID int64) ([]*model.Video, error)
}

// ISeriesAdmin is the write side of series curation.
type ISeriesAdmin interface {
	CreateSeries(ctx context.Context, s model.Series) (int64, error)
	UpdateSeries(ctx context.Context, s model.Series) error
	DeleteSeries(ctx context.Context, key string) error
	// SetFeatured flags one series and unsets any previous holder inside
	// the same transaction.
	SetFeatured(ctx context.Context, key string) error
}
