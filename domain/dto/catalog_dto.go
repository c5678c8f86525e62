package dto

import "vespa-academy/domain/model"

// HomeView aggregates everything the home page renders in one payload.
type HomeView struct {
	Categories    map[string]*model.Category `json:"categories"`
	Order         []string                   `json:"order"`
	MostLiked     []*model.Video             `json:"most_liked"`
	FeaturedVideo *model.Video               `json:"featured_video,omitempty"`
	Series        *model.FeaturedSeries      `json:"featured_series,omitempty"`
	Message       string                     `json:"message,omitempty"`
	Error         string                     `json:"error,omitempty"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []*model.Video `json:"results"`
}

type LikeResponse struct {
	VideoID int64 `json:"video_id"`
	Likes   int   `json:"likes"`
}
