package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"hotelbooking/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        ":memory:",
		}),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&reviewModel{}, &reviewVoteModel{}))
	return db
}

func seedReview(t *testing.T, repo *ReviewRepository) *domain.Review {
	t.Helper()
	rev := &domain.Review{
		UserID:     1,
		HotelID:    1,
		Title:      "Solid stay",
		Content:    "Clean and quiet",
		Rating:     4,
		IsApproved: true,
	}
	require.NoError(t, repo.Create(context.Background(), rev))
	return rev
}

func TestReviewRepository_ChangedVoteLeavesOneRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()
	rev := seedReview(t, repo)

	err := repo.UpsertVote(ctx, &domain.ReviewHelpfulness{
		ReviewID: rev.ID, UserID: 2, IsHelpful: true,
	})
	require.NoError(t, err)
	helpful, notHelpful, err := repo.RecountHelpfulness(ctx, rev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, helpful)
	assert.Equal(t, 0, notHelpful)

	// The same user changes their mind: the vote is replaced, not added.
	err = repo.UpsertVote(ctx, &domain.ReviewHelpfulness{
		ReviewID: rev.ID, UserID: 2, IsHelpful: false,
	})
	require.NoError(t, err)
	helpful, notHelpful, err = repo.RecountHelpfulness(ctx, rev.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, helpful)
	assert.Equal(t, 1, notHelpful)

	var rows int64
	require.NoError(t, db.Model(&reviewVoteModel{}).
		Where("review_id = ?", rev.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	got, err := repo.GetByID(ctx, rev.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.HelpfulCount)
	assert.Equal(t, 1, got.NotHelpfulCount)
}

func TestReviewRepository_RecountCountsPerVoter(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()
	rev := seedReview(t, repo)

	for _, v := range []struct {
		userID    int64
		isHelpful bool
	}{
		{2, true},
		{3, true},
		{4, false},
	} {
		require.NoError(t, repo.UpsertVote(ctx, &domain.ReviewHelpfulness{
			ReviewID: rev.ID, UserID: v.userID, IsHelpful: v.isHelpful,
		}))
	}

	helpful, notHelpful, err := repo.RecountHelpfulness(ctx, rev.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, helpful)
	assert.Equal(t, 1, notHelpful)
}
