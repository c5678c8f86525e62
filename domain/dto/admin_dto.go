package dto

// VideoUpsertRequest is shared by the add and edit paths. On add, empty
// Categories/Series leave existing assignments alone; on edit they clear
// them. Problems only applies on edit.
type VideoUpsertRequest struct {
	Platform   string   `json:"platform" binding:"required"`
	PlatformID string   `json:"platform_id" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Keywords   string   `json:"keywords"`
	Categories []string `json:"categories"`
	Series     []string `json:"series"`
	Problems   []int64  `json:"problems"`
}

// CategoryRequest is shared by add and edit; on edit the key comes from
// the URL, so it is not required in the body.
type CategoryRequest struct {
	Key         string `json:"key"`
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type SeriesRequest struct {
	Key         string `json:"key"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type VideoUpsertResponse struct {
	VideoID int64  `json:"video_id"`
	Created bool   `json:"created"`
	Merged  bool   `json:"merged"`
	Title   string `json:"title"`
}
