package repository

import (
	"context"
	"errors"
	"testing"

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

func TestListByIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, "auth.users")

	rows := sqlmock.NewRows([]string{"id", "email", "raw_user_meta_data"}).
		AddRow("u1", "ann@x.com", []byte(`{"full_name":"Ann Lee","username":"annl"}`)).
		AddRow("u2", "j.doe@x.com", nil)
	mock.ExpectQuery(`SELECT .* FROM "auth"\."users" WHERE id IN \(\$1,\$2\)`).
		WithArgs("u1", "u2").
		WillReturnRows(rows)

	users, err := repo.ListByIDs(context.Background(), []string{"u1", "u2"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ann Lee", users[0].Metadata.FullName)
	assert.Equal(t, "annl", users[0].Metadata.Username)
	assert.Equal(t, "j.doe@x.com", users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDsEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, "auth.users")

	users, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)
	// no query issued
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByIDsError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, "auth.users")

	mock.ExpectQuery(`FROM "auth"\."users"`).WillReturnError(errors.New("permission denied"))

	users, err := repo.ListByIDs(context.Background(), []string{"u1"})
	assert.Error(t, err)
	assert.Nil(t, users)
}

func TestGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIdentityRepository(db, "auth.users")

	mock.ExpectQuery(`FROM "auth"\."users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "raw_user_meta_data"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
