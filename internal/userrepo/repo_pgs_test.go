//go:build integration

package userrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/configpkg"
	"github.com/go-petr/money-guard/pkg/dbpkg"
	"github.com/go-petr/money-guard/pkg/passpkg"
	"github.com/go-petr/money-guard/pkg/randompkg"

	_ "github.com/lib/pq"
)

func setupRepo(t *testing.T) *RepoPGS {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	require.NoError(t, err)

	return NewRepoPGS(dbpkg.SetupTX(t, config.DBDriver, config.DBSource))
}

func createRandomUser(t *testing.T, repo *RepoPGS) domain.User {
	hashedPassword, err := passpkg.Hash(randompkg.Password())
	require.NoError(t, err)

	arg := domain.CreateUserParams{
		Username:       randompkg.Username(),
		HashedPassword: hashedPassword,
		Email:          randompkg.Email(),
	}

	user, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Username, user.Username)
	require.Equal(t, arg.HashedPassword, user.HashedPassword)
	require.Equal(t, arg.Email, user.Email)

	require.NotZero(t, user.CreatedAt)

	return user
}

func TestCreate(t *testing.T) {
	createRandomUser(t, setupRepo(t))
}

func TestCreateUserUniqueViolation(t *testing.T) {
	repo := setupRepo(t)
	user1 := createRandomUser(t, repo)

	hashedPassword, err := passpkg.Hash(randompkg.Password())
	require.NoError(t, err)

	arg := domain.CreateUserParams{
		Username:       user1.Username, // Username duplicate
		HashedPassword: hashedPassword,
		Email:          randompkg.Email(),
	}

	user2, err := repo.Create(context.Background(), arg)
	require.EqualError(t, err, domain.ErrUsernameAlreadyExists.Error())
	require.Empty(t, user2)
}

func TestCreateEmailUniqueViolation(t *testing.T) {
	repo := setupRepo(t)
	user1 := createRandomUser(t, repo)

	arg := domain.CreateUserParams{
		Username:       randompkg.Username(),
		HashedPassword: user1.HashedPassword,
		Email:          user1.Email, // Email duplicate
	}

	user2, err := repo.Create(context.Background(), arg)
	require.EqualError(t, err, domain.ErrEmailALreadyExists.Error())
	require.Empty(t, user2)
}

func TestGetByEmail(t *testing.T) {
	repo := setupRepo(t)
	user1 := createRandomUser(t, repo)

	user2, err := repo.GetByEmail(context.Background(), user1.Email)
	require.NoError(t, err)

	require.Equal(t, user1.Username, user2.Username)
	require.Equal(t, user1.HashedPassword, user2.HashedPassword)
	require.Equal(t, user1.Email, user2.Email)
	require.WithinDuration(t, user1.CreatedAt, user2.CreatedAt, time.Second)

	_, err = repo.GetByEmail(context.Background(), "missing@mail.com")
	require.EqualError(t, err, domain.ErrUserNotFound.Error())
}
