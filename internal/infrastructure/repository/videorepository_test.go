package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/shared/logger"
)

func createVideo(t *testing.T, repo video.Repository, title string, at time.Time) *video.Video {
	t.Helper()
	v, err := video.NewVideo(video.CreateParams{
		Title:    title,
		VideoURL: "https://cdn.example.com/" + title,
		Tags:     []string{"Romance", "Drama"},
	}, at)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestVideoRepository_ListNewestFirstWithPagination(t *testing.T) {
	repo := NewVideoRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	a := createVideo(t, repo, "a", repoNow.Add(-2*time.Hour))
	b := createVideo(t, repo, "b", repoNow.Add(-time.Hour))
	c := createVideo(t, repo, "c", repoNow)

	page1, total, err := repo.List(ctx, video.ListFilter{OnlyActive: true, Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	assert.Equal(t, c.SID(), page1[0].SID())
	assert.Equal(t, b.SID(), page1[1].SID())
	assert.Equal(t, []string{"romance", "drama"}, page1[0].Tags())

	page2, _, err := repo.List(ctx, video.ListFilter{OnlyActive: true, Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, a.SID(), page2[0].SID())
}

func TestVideoRepository_SoftDelete(t *testing.T) {
	repo := NewVideoRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	v := createVideo(t, repo, "gone", repoNow)
	require.NoError(t, repo.Delete(ctx, v.ID()))

	found, err := repo.GetBySID(ctx, v.SID())
	require.NoError(t, err)
	assert.Nil(t, found)

	_, total, err := repo.List(ctx, video.ListFilter{OnlyActive: true, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	assert.ErrorIs(t, repo.Delete(ctx, v.ID()), video.ErrVideoNotFound)
}
