package model

// Series is an admin-curated ordered grouping of videos. At most one
// series is flagged featured at any time; SetFeatured enforces this at
// write time by unsetting the previous holder in the same transaction.
type Series struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsFeatured  bool   `json:"is_featured"`
}

// FeaturedSeries bundles the two member views the home page renders: a
// top-3 highlight strip and the complete ordered list.
type FeaturedSeries struct {
	Series *Series  `json:"series"`
	Top    []*Video `json:"top"`
	All    []*Video `json:"all"`
}
