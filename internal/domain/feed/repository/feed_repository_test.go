package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"community_api/internal/domain/feed/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

var postColumns = []string{"id", "created_at", "type", "title", "content", "images", "tags", "likes", "shares", "comment_count", "user_id", "recipe"}

func TestListPosts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(postColumns).
		AddRow(2, now, "recipe", "Soup", "Hot soup", []byte(`["a.jpg"]`), []byte(`["food"]`), 3, 0, 1, "u1", []byte(`{"servings":2}`)).
		AddRow(1, now, "recipe", "Bread", "Fresh", nil, nil, nil, nil, nil, "u2", nil)

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE type = \$1 ORDER BY created_at desc LIMIT \$2 OFFSET \$3`).
		WithArgs("recipe", 10, 10).
		WillReturnRows(rows)

	posts, err := repo.ListPosts(context.Background(), "recipe", 10, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, int64(2), posts[0].ID)
	assert.Equal(t, model.StringSlice{"a.jpg"}, posts[0].Images)
	assert.JSONEq(t, `{"servings":2}`, string(posts[0].Recipe))
	assert.Nil(t, posts[1].Images)
	assert.Equal(t, 0, posts[1].Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPostsWithoutFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "posts" ORDER BY created_at desc LIMIT \$1`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.ListPosts(context.Background(), "", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPostByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := repo.GetPostByID(context.Background(), 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIncrementLikes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectQuery(`UPDATE "posts" SET "likes"=COALESCE\(likes, 0\) \+ \$1 WHERE id = \$2 RETURNING "likes"`).
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(5))

	likes, err := repo.IncrementLikes(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 5, likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementLikesUnknownPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectQuery(`UPDATE "posts" SET "likes"`).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}))

	_, err := repo.IncrementLikes(context.Background(), 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIncrementLikesStoreError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectQuery(`UPDATE "posts" SET "likes"`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.IncrementLikes(context.Background(), 1)
	assert.EqualError(t, err, "connection reset")
}

func TestCreateComment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectQuery(`INSERT INTO "comments" \("created_at","post_id","content","user_id"\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING "id"`).
		WithArgs(sqlmock.AnyArg(), int64(7), "Looks great", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	comment := &model.Comment{PostID: 7, Content: "Looks great", UserID: "u1"}
	require.NoError(t, repo.CreateComment(context.Background(), comment))
	assert.Equal(t, int64(42), comment.ID)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementCommentCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	mock.ExpectExec(`SELECT increment_comment_count\(\$1\)`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementCommentCount(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListComments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1 ORDER BY created_at asc`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "post_id", "content", "user_id"}).
			AddRow(1, now, 7, "first", "u1").
			AddRow(2, now, 7, "second", "u2"))

	comments, err := repo.ListComments(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
