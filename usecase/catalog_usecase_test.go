package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
	"vespa-academy/usecase"
)

// Mock implementations

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetCategories(ctx context.Context) ([]repository.CategoryRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryRow), args.Error(1)
}

func (m *MockCatalogRepository) GetVideos(ctx context.Context) ([]*model.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockCatalogRepository) GetCategoryAssignments(ctx context.Context) ([]repository.CategoryAssignmentRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryAssignmentRow), args.Error(1)
}

func (m *MockCatalogRepository) GetProblemAssignments(ctx context.Context) ([]repository.ProblemAssignmentRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ProblemAssignmentRow), args.Error(1)
}

func (m *MockCatalogRepository) IncrementLikes(ctx context.Context, videoID int64) (int, error) {
	args := m.Called(ctx, videoID)
	return args.Int(0), args.Error(1)
}

type MockSeriesRepository struct {
	mock.Mock
}

func (m *MockSeriesRepository) GetFeatured(ctx context.Context) (*model.Series, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Series), args.Error(1)
}

func (m *MockSeriesRepository) GetMembersTop(ctx context.Context, seriesID int64, limit int) ([]*model.Video, error) {
	args := m.Called(ctx, seriesID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func (m *MockSeriesRepository) GetMembersAll(ctx context.Context, seriesID int64) ([]*model.Video, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Video), args.Error(1)
}

func video(id int64, title string, likes int, created time.Time) *model.Video {
	return &model.Video{
		ID:         id,
		Platform:   model.PlatformMuse,
		PlatformID: title,
		Title:      title,
		Likes:      likes,
		CreatedAt:  created,
	}
}

func TestCatalogUsecase_LoadCatalog_JoinsAssignments(t *testing.T) {
	now := time.Now().UTC()
	catalogRepo := new(MockCatalogRepository)
	seriesRepo := new(MockSeriesRepository)

	catalogRepo.On("GetCategories", mock.Anything).Return([]repository.CategoryRow{
		{Key: "VISION", Name: "VISION", Color: "#ff8f00"},
		{Key: "EFFORT", Name: "EFFORT", Color: "#86b4f0"},
	}, nil)
	catalogRepo.On("GetVideos", mock.Anything).Return([]*model.Video{
		video(1, "Sticky Timetables", 3, now),
		video(2, "25min Sprints", 7, now),
	}, nil)
	catalogRepo.On("GetCategoryAssignments", mock.Anything).Return([]repository.CategoryAssignmentRow{
		{VideoID: 1, CategoryKey: "VISION"},
		{VideoID: 1, CategoryKey: "EFFORT"},
		{VideoID: 2, CategoryKey: "EFFORT"},
	}, nil)
	catalogRepo.On("GetProblemAssignments", mock.Anything).Return([]repository.ProblemAssignmentRow{
		{VideoID: 2, Text: "I run out of time in exams", Theme: "time management"},
	}, nil)

	uc := usecase.NewCatalogUsecase(catalogRepo, seriesRepo)
	catalog, err := uc.LoadCatalog(context.Background())

	require.NoError(t, err)
	require.Equal(t, []string{"VISION", "EFFORT"}, catalog.Order)
	require.Len(t, catalog.Videos, 2)

	vision := catalog.Categories["VISION"]
	effort := catalog.Categories["EFFORT"]
	require.Len(t, vision.Videos, 1)
	require.Len(t, effort.Videos, 2)
	assert.Equal(t, []string{"VISION", "EFFORT"}, vision.Videos[0].Categories)

	// Category lists hold the same instances as the flat list, so a
	// like-count change is visible from both sides.
	catalog.Videos[0].Likes = 99
	assert.Equal(t, 99, vision.Videos[0].Likes)

	// Problems are embedded values
	assert.Equal(t, []model.Problem{{Text: "I run out of time in exams", Theme: "time management"}}, effort.Videos[1].Problems)
}

func TestCatalogUsecase_LoadCatalog_DropsDanglingAssignments(t *testing.T) {
	now := time.Now().UTC()
	catalogRepo := new(MockCatalogRepository)
	seriesRepo := new(MockSeriesRepository)

	catalogRepo.On("GetCategories", mock.Anything).Return([]repository.CategoryRow{
		{Key: "PRACTICE", Name: "PRACTICE"},
	}, nil)
	catalogRepo.On("GetVideos", mock.Anything).Return([]*model.Video{
		video(1, "Cog P vs Cog A", 0, now),
	}, nil)
	catalogRepo.On("GetCategoryAssignments", mock.Anything).Return([]repository.CategoryAssignmentRow{
		{VideoID: 1, CategoryKey: "PRACTICE"},
		{VideoID: 1, CategoryKey: "DELETED"}, // category no longer exists
		{VideoID: 42, CategoryKey: "PRACTICE"}, // video no longer exists
	}, nil)
	catalogRepo.On("GetProblemAssignments", mock.Anything).Return([]repository.ProblemAssignmentRow{
		{VideoID: 42, Text: "orphan", Theme: ""},
	}, nil)

	uc := usecase.NewCatalogUsecase(catalogRepo, seriesRepo)
	catalog, err := uc.LoadCatalog(context.Background())

	require.NoError(t, err)
	require.Len(t, catalog.Categories["PRACTICE"].Videos, 1)
	assert.Equal(t, []string{"PRACTICE"}, catalog.Videos[0].Categories)
	assert.Empty(t, catalog.Videos[0].Problems)
}

func TestCatalogUsecase_LoadCatalog_FailClosed(t *testing.T) {
	catalogRepo := new(MockCatalogRepository)
	seriesRepo := new(MockSeriesRepository)

	catalogRepo.On("GetCategories", mock.Anything).Return([]repository.CategoryRow{
		{Key: "VISION", Name: "VISION"},
	}, nil)
	catalogRepo.On("GetVideos", mock.Anything).Return(nil, errors.New("connection refused"))

	uc := usecase.NewCatalogUsecase(catalogRepo, seriesRepo)
	catalog, err := uc.LoadCatalog(context.Background())

	require.Error(t, err)
	// No partial catalog: even the already-loaded categories are gone
	assert.Empty(t, catalog.Categories)
	assert.Empty(t, catalog.Order)
	assert.Empty(t, catalog.Videos)
}

func TestAddFreshCategory_WindowBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	days := func(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

	catalog := model.NewCatalog()
	catalog.Order = []string{"VISION"}
	catalog.Categories["VISION"] = &model.Category{Key: "VISION", Name: "VISION"}
	in13 := video(1, "thirteen", 0, days(13))
	in14 := video(2, "fourteen", 0, days(14))
	out15 := video(3, "fifteen", 0, days(15))
	catalog.Videos = []*model.Video{out15, in13, in14}

	usecase.AddFreshCategory(&catalog, now)

	fresh, ok := catalog.Categories[model.FreshCategoryKey]
	require.True(t, ok)
	// 14 days is an inclusive bound; 15 days is out; newest first
	require.Len(t, fresh.Videos, 2)
	assert.Equal(t, "thirteen", fresh.Videos[0].Title)
	assert.Equal(t, "fourteen", fresh.Videos[1].Title)
	assert.Equal(t, model.FreshCategoryKey, catalog.Order[0])
}

func TestAddFreshCategory_OmittedWhenEmpty(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	catalog := model.NewCatalog()
	catalog.Videos = []*model.Video{video(1, "old", 0, now.Add(-30*24*time.Hour))}

	usecase.AddFreshCategory(&catalog, now)

	_, ok := catalog.Categories[model.FreshCategoryKey]
	assert.False(t, ok)
	assert.Empty(t, catalog.Order)
}

func TestSortCategoryVideos_LikesDescTitleAsc(t *testing.T) {
	now := time.Now().UTC()
	catalog := model.NewCatalog()
	a := video(1, "Alpha", 5, now)
	b := video(2, "Beta", 5, now)
	c := video(3, "Gamma", 9, now)
	catalog.Categories["X"] = &model.Category{Key: "X", Name: "X", Videos: []*model.Video{b, c, a}}
	catalog.Order = []string{"X"}

	usecase.SortCategoryVideos(&catalog)

	got := catalog.Categories["X"].Videos
	assert.Equal(t, []string{"Gamma", "Alpha", "Beta"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestMostLiked(t *testing.T) {
	now := time.Now().UTC()
	videos := []*model.Video{
		video(1, "one", 2, now),
		video(2, "two", 8, now),
		video(3, "three", 2, now),
		video(4, "four", 5, now),
	}

	top := usecase.MostLiked(videos, 3)

	require.Len(t, top, 3)
	assert.Equal(t, int64(2), top[0].ID)
	assert.Equal(t, int64(4), top[1].ID)
	// Stable: first of the tied pair keeps its earlier position
	assert.Equal(t, int64(1), top[2].ID)

	// Input order untouched
	assert.Equal(t, int64(1), videos[0].ID)

	short := usecase.MostLiked(videos[:2], 3)
	assert.Len(t, short, 2)
}

func TestFeaturedVideoOfDay(t *testing.T) {
	now := time.Now().UTC()
	videos := []*model.Video{
		video(1, "one", 0, now),
		video(2, "two", 0, now),
		video(3, "three", 0, now),
	}

	day40 := time.Date(2025, 2, 9, 10, 0, 0, 0, time.UTC) // day of year 40
	require.Equal(t, 40, day40.YearDay())

	picked := usecase.FeaturedVideoOfDay(videos, day40)
	require.NotNil(t, picked)
	assert.Equal(t, videos[(40-1)%3], picked)

	// Stable across repeated calls on the same date
	assert.Equal(t, picked, usecase.FeaturedVideoOfDay(videos, day40.Add(5*time.Hour)))

	assert.Nil(t, usecase.FeaturedVideoOfDay(nil, day40))
}

func TestSearchCatalog(t *testing.T) {
	now := time.Now().UTC()
	catalog := model.NewCatalog()
	catalog.Categories["ATTITUDE"] = &model.Category{Key: "ATTITUDE", Name: "ATTITUDE"}

	byTitle := video(1, "Sticky Timetables", 0, now)
	byProblemTheme := video(2, "Untitled Session", 0, now)
	byProblemTheme.Problems = []model.Problem{{Text: "I freeze in exams", Theme: "resilience"}}
	byCategory := video(3, "Closed Book Notetaking", 0, now)
	byCategory.Categories = []string{"ATTITUDE"}
	multiMatch := video(4, "Resilience Habits", 0, now)
	multiMatch.Keywords = "resilience, mindset"
	catalog.Videos = []*model.Video{byTitle, byProblemTheme, byCategory, multiMatch}

	// Empty query matches nothing, not everything
	assert.Empty(t, usecase.SearchCatalog("", catalog))
	assert.Empty(t, usecase.SearchCatalog("   ", catalog))

	// Case-insensitive title match
	got := usecase.SearchCatalog("sticky", catalog)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// A problem-theme-only match still surfaces the video; a video
	// matching on several fields appears exactly once.
	got = usecase.SearchCatalog("RESILIENCE", catalog)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)

	// Category display-name match
	got = usecase.SearchCatalog("attitude", catalog)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestCatalogUsecase_Like(t *testing.T) {
	catalogRepo := new(MockCatalogRepository)
	seriesRepo := new(MockSeriesRepository)
	catalogRepo.On("IncrementLikes", mock.Anything, int64(7)).Return(12, nil).Once()

	uc := usecase.NewCatalogUsecase(catalogRepo, seriesRepo)
	likes, err := uc.Like(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 12, likes)
	catalogRepo.AssertExpectations(t)
}
