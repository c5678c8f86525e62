package persistence_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vespa-academy/domain/model"
	"vespa-academy/infrastructure/persistence"
)

func TestCatalogRepository_GetCategories(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "name", "color", "description", "icon"}).
		AddRow("VISION", "VISION", "#ff8f00", "Where you are heading", "fa-eye").
		AddRow("EFFORT", "EFFORT", "#86b4f0", "", "")
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT key, name, color, description, icon FROM categories ORDER BY position ASC`)).
		WillReturnRows(rows)

	repo := persistence.NewCatalogRepository(db)
	categories, err := repo.GetCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "VISION", categories[0].Key)
	assert.Equal(t, "EFFORT", categories[1].Key)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCatalogRepository_GetVideos_NormalizesToUTC(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	loc := time.FixedZone("UTC+7", 7*3600)
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, loc)
	rows := sqlmock.NewRows([]string{"id", "platform", "platform_id", "title", "keywords", "view_count", "likes", "created_at"}).
		AddRow(int64(1), "muse", "m1", "Sticky Timetables", "planning", 120, 7, created)
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT id, platform, platform_id, title, keywords, view_count, likes, created_at FROM videos ORDER BY id ASC`)).
		WillReturnRows(rows)

	repo := persistence.NewCatalogRepository(db)
	videos, err := repo.GetVideos(context.Background())

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, model.PlatformMuse, videos[0].Platform)
	assert.Equal(t, time.UTC, videos[0].CreatedAt.Location())
	assert.True(t, videos[0].CreatedAt.Equal(created))
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCatalogRepository_GetProblemAssignments(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"video_id", "text", "theme"}).
		AddRow(int64(2), "I run out of time in exams", "time management")
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT vp.video_id, p.text, p.theme FROM video_problems vp JOIN problems p ON p.id = vp.problem_id`)).
		WillReturnRows(rows)

	repo := persistence.NewCatalogRepository(db)
	assignments, err := repo.GetProblemAssignments(context.Background())

	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "time management", assignments[0].Theme)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCatalogRepository_IncrementLikes(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta(`UPDATE videos SET likes = likes + 1 WHERE id = $1 RETURNING likes`)
	for i := 1; i <= 5; i++ {
		dbMock.ExpectQuery(query).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(i))
	}

	repo := persistence.NewCatalogRepository(db)
	var likes int
	for i := 1; i <= 5; i++ {
		likes, err = repo.IncrementLikes(context.Background(), 7)
		require.NoError(t, err)
	}

	// Five increments land five counts, no lost update
	assert.Equal(t, 5, likes)
	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestCatalogRepository_IncrementLikes_UnknownVideo(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery(regexp.QuoteMeta(`UPDATE videos SET likes = likes + 1 WHERE id = $1 RETURNING likes`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}))

	repo := persistence.NewCatalogRepository(db)
	_, err = repo.IncrementLikes(context.Background(), 404)

	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, dbMock.ExpectationsWereMet())
}
