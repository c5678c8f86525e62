package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
	"vespa-academy/usecase"
)

type MockCategoryAdminRepository struct {
	mock.Mock
}

func (m *MockCategoryAdminRepository) CreateCategory(ctx context.Context, row repository.CategoryRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockCategoryAdminRepository) UpdateCategory(ctx context.Context, row repository.CategoryRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockCategoryAdminRepository) DeleteCategory(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockSeriesAdminRepository struct {
	mock.Mock
}

func (m *MockSeriesAdminRepository) CreateSeries(ctx context.Context, series model.Series) (int64, error) {
	args := m.Called(ctx, series)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeriesAdminRepository) UpdateSeries(ctx context.Context, series model.Series) error {
	args := m.Called(ctx, series)
	return args.Error(0)
}

func (m *MockSeriesAdminRepository) DeleteSeries(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockSeriesAdminRepository) SetFeatured(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestCatalogAdminUsecase_CreateCategory(t *testing.T) {
	categoryRepo := new(MockCategoryAdminRepository)
	seriesRepo := new(MockSeriesAdminRepository)

	categoryRepo.On("CreateCategory", mock.Anything, repository.CategoryRow{
		Key: "SYSTEMS", Name: "SYSTEMS", Color: "#72cb44",
	}).Return(nil).Once()

	uc := usecase.NewCatalogAdminUsecase(categoryRepo, seriesRepo)
	err := uc.CreateCategory(context.Background(), dto.CategoryRequest{Key: " SYSTEMS ", Name: "SYSTEMS", Color: "#72cb44"})

	require.NoError(t, err)
	categoryRepo.AssertExpectations(t)
}

func TestCatalogAdminUsecase_CreateCategory_ReservedKey(t *testing.T) {
	categoryRepo := new(MockCategoryAdminRepository)
	seriesRepo := new(MockSeriesAdminRepository)
	uc := usecase.NewCatalogAdminUsecase(categoryRepo, seriesRepo)

	for _, key := range []string{"", "  ", "_FRESH", "_anything"} {
		err := uc.CreateCategory(context.Background(), dto.CategoryRequest{Key: key, Name: "X"})
		var validationErr *model.ValidationError
		require.ErrorAs(t, err, &validationErr, "key %q", key)
		assert.Equal(t, "key", validationErr.Field)
	}
	categoryRepo.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCatalogAdminUsecase_CreateSeries(t *testing.T) {
	categoryRepo := new(MockCategoryAdminRepository)
	seriesRepo := new(MockSeriesAdminRepository)

	seriesRepo.On("CreateSeries", mock.Anything, model.Series{Key: "exam-season", Name: "Exam Season"}).
		Return(int64(5), nil).Once()

	uc := usecase.NewCatalogAdminUsecase(categoryRepo, seriesRepo)
	id, err := uc.CreateSeries(context.Background(), dto.SeriesRequest{Key: "exam-season", Name: "Exam Season"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
}

func TestCatalogAdminUsecase_SetFeaturedSeries_NotFound(t *testing.T) {
	categoryRepo := new(MockCategoryAdminRepository)
	seriesRepo := new(MockSeriesAdminRepository)
	seriesRepo.On("SetFeatured", mock.Anything, "ghost").Return(model.ErrNotFound)

	uc := usecase.NewCatalogAdminUsecase(categoryRepo, seriesRepo)
	err := uc.SetFeaturedSeries(context.Background(), "ghost")

	require.ErrorIs(t, err, model.ErrNotFound)
}
