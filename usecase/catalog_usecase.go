package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/domain/repository"
	"vespa-academy/infrastructure/logger"
)

// MostLikedCount is the size of the global most-liked strip.
const MostLikedCount = 3

type ICatalogUsecase interface {
	// LoadCatalog builds the denormalized category/video graph. On a
	// storage error it returns an empty catalog and the error; no partial
	// catalog is ever exposed.
	LoadCatalog(ctx context.Context) (model.Catalog, error)
	// Home assembles everything the home page needs in one pass.
	Home(ctx context.Context, now time.Time) (dto.HomeView, error)
	Search(ctx context.Context, query string) ([]*model.Video, error)
	Like(ctx context.Context, videoID int64) (int, error)
}

type catalogUsecase struct {
	catalogRepo repository.ICatalog
	seriesRepo  repository.ISeries
}

func NewCatalogUsecase(catalogRepo repository.ICatalog, seriesRepo repository.ISeries) ICatalogUsecase {
	return &catalogUsecase{catalogRepo: catalogRepo, seriesRepo: seriesRepo}
}

func (u *catalogUsecase) LoadCatalog(ctx context.Context) (model.Catalog, error) {
	catalog := model.NewCatalog()

	categoryRows, err := u.catalogRepo.GetCategories(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching categories")
		return model.NewCatalog(), err
	}
	for _, row := range categoryRows {
		catalog.Categories[row.Key] = &model.Category{
			Key:         row.Key,
			Name:        row.Name,
			Color:       row.Color,
			Description: row.Description,
			Icon:        row.Icon,
			Videos:      []*model.Video{},
		}
		catalog.Order = append(catalog.Order, row.Key)
	}

	videos, err := u.catalogRepo.GetVideos(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching videos")
		return model.NewCatalog(), err
	}
	byID := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		v.Categories = []string{}
		byID[v.ID] = v
	}
	catalog.Videos = videos

	assignments, err := u.catalogRepo.GetCategoryAssignments(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching category assignments")
		return model.NewCatalog(), err
	}
	for _, a := range assignments {
		category, okCat := catalog.Categories[a.CategoryKey]
		video, okVid := byID[a.VideoID]
		if !okCat || !okVid {
			// Dangling assignment rows are dropped, never fatal
			logger.GetLogger().WithFields(map[string]interface{}{
				"video_id": a.VideoID, "category_key": a.CategoryKey,
			}).Warn("Dropping dangling category assignment")
			continue
		}
		video.Categories = append(video.Categories, a.CategoryKey)
		// Shared instance: the category list and the flat list see the
		// same video object.
		category.Videos = append(category.Videos, video)
	}

	problemAssignments, err := u.catalogRepo.GetProblemAssignments(ctx)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching problem assignments")
		return model.NewCatalog(), err
	}
	for _, a := range problemAssignments {
		video, ok := byID[a.VideoID]
		if !ok {
			logger.GetLogger().WithField("video_id", a.VideoID).Warn("Dropping dangling problem assignment")
			continue
		}
		video.Problems = append(video.Problems, model.Problem{Text: a.Text, Theme: a.Theme})
	}

	return catalog, nil
}

func (u *catalogUsecase) Home(ctx context.Context, now time.Time) (dto.HomeView, error) {
	catalog, err := u.LoadCatalog(ctx)
	if err != nil {
		return dto.HomeView{Categories: catalog.Categories, Order: catalog.Order}, err
	}

	// Featured pick uses the natural load order, so it runs before any
	// per-category sorting.
	featured := FeaturedVideoOfDay(catalog.Videos, now)
	mostLiked := MostLiked(catalog.Videos, MostLikedCount)
	AddFreshCategory(&catalog, now)
	SortCategoryVideos(&catalog)

	view := dto.HomeView{
		Categories:    catalog.Categories,
		Order:         catalog.Order,
		MostLiked:     mostLiked,
		FeaturedVideo: featured,
	}

	featuredSeries, err := LoadFeaturedSeries(ctx, u.seriesRepo)
	if err != nil {
		// The series strip is additive; the rest of the page still renders
		logger.GetLogger().WithField("error", err).Error("Error while loading featured series")
		return view, nil
	}
	view.Series = featuredSeries
	return view, nil
}

func (u *catalogUsecase) Search(ctx context.Context, query string) ([]*model.Video, error) {
	catalog, err := u.LoadCatalog(ctx)
	if err != nil {
		return []*model.Video{}, err
	}
	return SearchCatalog(query, catalog), nil
}

func (u *catalogUsecase) Like(ctx context.Context, videoID int64) (int, error) {
	return u.catalogRepo.IncrementLikes(ctx, videoID)
}

// AddFreshCategory derives the recent-videos pseudo-category: every video
// created inside the trailing 14-day window ending at now, newest first.
// The section is omitted entirely when no video qualifies.
func AddFreshCategory(catalog *model.Catalog, now time.Time) {
	cutoff := now.UTC().Add(-model.FreshWindow)
	var fresh []*model.Video
	for _, v := range catalog.Videos {
		if !v.CreatedAt.UTC().Before(cutoff) {
			fresh = append(fresh, v)
		}
	}
	if len(fresh) == 0 {
		return
	}
	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].CreatedAt.After(fresh[j].CreatedAt)
	})
	catalog.Categories[model.FreshCategoryKey] = &model.Category{
		Key:         model.FreshCategoryKey,
		Name:        "New Videos",
		Description: "Videos added in the last two weeks.",
		Videos:      fresh,
	}
	catalog.Order = append([]string{model.FreshCategoryKey}, catalog.Order...)
}

// SortCategoryVideos orders every category's list by likes descending,
// ties broken by title ascending.
func SortCategoryVideos(catalog *model.Catalog) {
	for _, category := range catalog.Categories {
		if category.Key == model.FreshCategoryKey {
			// Fresh section keeps its newest-first order
			continue
		}
		videos := category.Videos
		sort.SliceStable(videos, func(i, j int) bool {
			if videos[i].Likes != videos[j].Likes {
				return videos[i].Likes > videos[j].Likes
			}
			return videos[i].Title < videos[j].Title
		})
	}
}

// MostLiked returns the top n videos by like count. The input order is
// left untouched; ties keep their prior relative order.
func MostLiked(videos []*model.Video, n int) []*model.Video {
	ranked := make([]*model.Video, len(videos))
	copy(ranked, videos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Likes > ranked[j].Likes
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// FeaturedVideoOfDay deterministically picks one video per calendar day
// with no persisted state: (day of year - 1) modulo the video count,
// indexed into the natural load order.
func FeaturedVideoOfDay(videos []*model.Video, today time.Time) *model.Video {
	if len(videos) == 0 {
		return nil
	}
	return videos[(today.YearDay()-1)%len(videos)]
}

// SearchCatalog is a case-insensitive substring scan over title, keyword
// blob, linked problem text/theme and assigned category display names.
// Each video appears at most once; result order is the catalog's natural
// video order. An empty query matches nothing.
func SearchCatalog(query string, catalog model.Catalog) []*model.Video {
	query = strings.ToLower(strings.TrimSpace(query))
	results := []*model.Video{}
	if query == "" {
		return results
	}
	for _, v := range catalog.Videos {
		if videoMatches(v, query, catalog.Categories) {
			results = append(results, v)
		}
	}
	return results
}

func videoMatches(v *model.Video, query string, categories map[string]*model.Category) bool {
	if strings.Contains(strings.ToLower(v.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(v.Keywords), query) {
		return true
	}
	for _, p := range v.Problems {
		if strings.Contains(strings.ToLower(p.Text), query) || strings.Contains(strings.ToLower(p.Theme), query) {
			return true
		}
	}
	for _, key := range v.Categories {
		if category, ok := categories[key]; ok {
			if strings.Contains(strings.ToLower(category.Name), query) {
				return true
			}
		}
	}
	return false
}
