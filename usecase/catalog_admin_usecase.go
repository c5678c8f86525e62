package usecase

import (
	"context"
	"strings"

	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
)

type ICatalogAdminUsecase interface {
	CreateCategory(ctx context.Context, req dto.CategoryRequest) error
	UpdateCategory(ctx context.Context, req dto.CategoryRequest) error
	DeleteCategory(ctx context.Context, key string) error

	CreateSeries(ctx context.Context, req dto.SeriesRequest) (int64, error)
	UpdateSeries(ctx context.Context, req dto.SeriesRequest) error
	DeleteSeries(ctx context.Context, key string) error
	// SetFeaturedSeries makes the given series the single featured one.
	SetFeaturedSeries(ctx context.Context, key string) error
}

type catalogAdminUsecase struct {
	categoryRepo repository.ICategoryAdmin
	seriesRepo   repository.ISeriesAdmin
}

func NewCatalogAdminUsecase(categoryRepo repository.ICategoryAdmin, seriesRepo repository.ISeriesAdmin) ICatalogAdminUsecase {
	return &catalogAdminUsecase{categoryRepo: categoryRepo, seriesRepo: seriesRepo}
}

func (u *catalogAdminUsecase) CreateCategory(ctx context.Context, req dto.CategoryRequest) error {
	if err := validateKey(req.Key); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		return &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return u.categoryRepo.CreateCategory(ctx, categoryRow(req))
}

func (u *catalogAdminUsecase) UpdateCategory(ctx context.Context, req dto.CategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return u.categoryRepo.UpdateCategory(ctx, categoryRow(req))
}

func (u *catalogAdminUsecase) DeleteCategory(ctx context.Context, key string) error {
	return u.categoryRepo.DeleteCategory(ctx, key)
}

func (u *catalogAdminUsecase) CreateSeries(ctx context.Context, req dto.SeriesRequest) (int64, error) {
	if err := validateKey(req.Key); err != nil {
		return 0, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return 0, &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return u.seriesRepo.CreateSeries(ctx, seriesModel(req))
}

func (u *catalogAdminUsecase) UpdateSeries(ctx context.Context, req dto.SeriesRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &model.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return u.seriesRepo.UpdateSeries(ctx, seriesModel(req))
}

func (u *catalogAdminUsecase) DeleteSeries(ctx context.Context, key string) error {
	return u.seriesRepo.DeleteSeries(ctx, key)
}

func (u *catalogAdminUsecase) SetFeaturedSeries(ctx context.Context, key string) error {
	return u.seriesRepo.SetFeatured(ctx, key)
}

// validateKey keeps persisted keys out of the derived-section key space:
// a leading underscore is reserved for pseudo-categories such as
// model.FreshCategoryKey.
func validateKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return &model.ValidationError{Field: "key", Reason: "must not be empty"}
	}
	if strings.HasPrefix(key, "_") {
		return &model.ValidationError{Field: "key", Reason: "keys starting with underscore are reserved"}
	}
	return nil
}

func categoryRow(req dto.CategoryRequest) repository.CategoryRow {
	return repository.CategoryRow{
		Key:         strings.TrimSpace(req.Key),
		Name:        strings.TrimSpace(req.Name),
		Color:       req.Color,
		Description: req.Description,
		Icon:        req.Icon,
	}
}

func seriesModel(req dto.SeriesRequest) model.Series {
	return model.Series{
		Key:         strings.TrimSpace(req.Key),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}
}
