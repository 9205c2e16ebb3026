package repository

import (
	"errors"
	"testing"

	"notedeck/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInsertDuplicateUsernameTranslates(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Insert(&entity.User{Username: "alice", CreatedAt: 1000}))

	err := repo.Insert(&entity.User{Username: "alice", CreatedAt: 2000})
	require.Error(t, err)
	require.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Insert(&entity.User{Username: "alice", CreatedAt: 1000}))
	require.NoError(t, repo.Insert(&entity.User{Username: "Alice", CreatedAt: 1000}))

	user, err := repo.FindByUsername("Alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "Alice", user.Username)
}

func TestFindByIDNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user, err := repo.FindByID(12345)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestInsertAssignsID(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	user := &entity.User{Username: "bob", CreatedAt: 1000}
	require.NoError(t, repo.Insert(user))
	require.NotZero(t, user.ID)

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "bob", found.Username)
}
