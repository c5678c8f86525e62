package usecase

import (
	"context"

	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
)

// SeriesTopCount is the size of the featured-series highlight strip.
const SeriesTopCount = 3

type ISeriesUsecase interface {
	// LoadFeaturedSeries resolves the single featured series and its two
	// member views. Returns (nil, nil) when no series is flagged.
	LoadFeaturedSeries(ctx context.Context) (*model.FeaturedSeries, error)
}

type seriesUsecase struct {
	seriesRepo repository.ISeries
}

func NewSeriesUsecase(seriesRepo repository.ISeries) ISeriesUsecase {
	return &seriesUsecase{seriesRepo: seriesRepo}
}

func (u *seriesUsecase) LoadFeaturedSeries(ctx context.Context) (*model.FeaturedSeries, error) {
	return LoadFeaturedSeries(ctx, u.seriesRepo)
}

// LoadFeaturedSeries queries the video_series relation directly, so a
// video appears here whether or not any category references it.
func LoadFeaturedSeries(ctx context.Context, seriesRepo repository.ISeries) (*model.FeaturedSeries, error) {
	series, err := seriesRepo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if series == nil {
		return nil, nil
	}
	top, err := seriesRepo.GetMembersTop(ctx, series.ID, SeriesTopCount)
	if err != nil {
		return nil, err
	}
	all, err := seriesRepo.GetMembersAll(ctx, series.ID)
	if err != nil {
		return nil, err
	}
	return &model.FeaturedSeries{Series: series, Top: top, All: all}, nil
}
