package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	ddl := `
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL DEFAULT '',
  name TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  points INTEGER NOT NULL DEFAULT 0,
  profile_pic TEXT,
  bio TEXT,
  status TEXT NOT NULL DEFAULT 'ACTIVE',
  system_role TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(ddl).Error)
	return conn
}

func TestCreateAndFindByEmail(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "ada@rewear.app",
		PasswordHash: "hashed",
		Name:         "Ada",
		Location:     "London",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, enums.UserStatusActive, created.Status)

	found, err := repo.FindByEmail(ctx, "ada@rewear.app")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Ada", found.Name)
}

func TestFindByEmailMissing(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@rewear.app")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "bo@rewear.app",
		PasswordHash: "hashed",
		Name:         "Bo",
		Location:     "Austin",
	})
	require.NoError(t, err)

	name := "Bo Updated"
	bio := "swap enthusiast"
	require.NoError(t, repo.UpdateProfile(ctx, created.ID, UpdateProfileDTO{
		Name: &name,
		Bio:  &bio,
	}))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bo Updated", found.Name)
	require.NotNil(t, found.Bio)
	assert.Equal(t, "swap enthusiast", *found.Bio)
	assert.Equal(t, "Austin", found.Location, "untouched fields survive partial updates")
}

func TestUpdateProfileNoFieldsIsNoOp(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "cy@rewear.app",
		PasswordHash: "hashed",
		Name:         "Cy",
	})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateProfile(ctx, created.ID, UpdateProfileDTO{}))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cy", found.Name)
}

func TestUpdateStatusSuspends(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "dee@rewear.app",
		PasswordHash: "hashed",
		Name:         "Dee",
	})
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, created.ID, enums.UserStatusSuspended))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.UserStatusSuspended, found.Status)
}

func TestListNewestFirst(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	older := &models.User{Email: "old@rewear.app", Name: "Old", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.User{Email: "new@rewear.app", Name: "New", CreatedAt: time.Now()}
	require.NoError(t, conn.Create(older).Error)
	require.NoError(t, conn.Create(newer).Error)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "new@rewear.app", listed[0].Email)
	assert.Equal(t, "old@rewear.app", listed[1].Email)
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := NewRepository(setupUsersTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUserDTO{
		Email:        "gone@rewear.app",
		PasswordHash: "hashed",
		Name:         "Gone",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.FindByID(ctx, created.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
