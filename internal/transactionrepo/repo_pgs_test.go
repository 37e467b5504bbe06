//go:build integration

package transactionrepo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/internal/test"
	"github.com/go-petr/money-guard/pkg/configpkg"
	"github.com/go-petr/money-guard/pkg/dbpkg"
	"github.com/go-petr/money-guard/pkg/randompkg"

	_ "github.com/lib/pq"
)

func setupTX(t *testing.T) *sql.Tx {
	t.Helper()

	config, err := configpkg.Load("../../configs")
	require.NoError(t, err)

	return dbpkg.SetupTX(t, config.DBDriver, config.DBSource)
}

func seedUser(t *testing.T, tx *sql.Tx) string {
	t.Helper()

	return test.SeedUser(t, tx).Username
}

func createRandomTransaction(t *testing.T, repo *RepoPGS, owner, date string) domain.Transaction {
	random := test.RandomTransaction(owner)
	arg := domain.CreateTransactionParams{
		ID:              random.ID,
		Owner:           owner,
		TransactionDate: date,
		Type:            random.Type,
		Category:        random.Category,
		Comment:         random.Comment,
		Amount:          random.Amount,
	}

	got, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)

	require.Equal(t, arg.ID, got.ID)
	require.Equal(t, arg.Owner, got.Owner)
	require.Equal(t, arg.TransactionDate, got.TransactionDate)
	require.True(t, arg.Amount.Equal(got.Amount))
	require.NotZero(t, got.CreatedAt)

	return got
}

func TestCreateAndList(t *testing.T) {
	tx := setupTX(t)
	repo := NewRepoPGS(tx)
	owner := seedUser(t, tx)

	second := createRandomTransaction(t, repo, owner, "2023-02-01")
	first := createRandomTransaction(t, repo, owner, "2021-07-15")

	got, err := repo.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, first.ID, got[0].ID)
	require.Equal(t, second.ID, got[1].ID)

	other, err := repo.List(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, other)
	require.Empty(t, other)
}

func TestCreateUnknownOwner(t *testing.T) {
	repo := NewRepoPGS(setupTX(t))

	_, err := repo.Create(context.Background(), domain.CreateTransactionParams{
		ID:              uuid.New(),
		Owner:           "nobody",
		TransactionDate: "2023-01-01",
		Type:            domain.Income,
		Category:        domain.IncomeCategory,
		Amount:          decimal.NewFromInt(10),
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	tx := setupTX(t)
	repo := NewRepoPGS(tx)
	owner := seedUser(t, tx)

	created := createRandomTransaction(t, repo, owner, randompkg.Date())

	require.ErrorIs(t, repo.Delete(context.Background(), "someone-else", created.ID), domain.ErrTransactionNotFound)
	require.NoError(t, repo.Delete(context.Background(), owner, created.ID))
	require.ErrorIs(t, repo.Delete(context.Background(), owner, created.ID), domain.ErrTransactionNotFound)
}

func TestUpdate(t *testing.T) {
	tx := setupTX(t)
	repo := NewRepoPGS(tx)
	owner := seedUser(t, tx)

	created := createRandomTransaction(t, repo, owner, "2022-03-04")

	arg := domain.CreateTransactionParams{
		ID:              created.ID,
		Owner:           owner,
		TransactionDate: "2023-08-09",
		Type:            domain.Income,
		Category:        domain.IncomeCategory,
		Comment:         "bonus",
		Amount:          decimal.RequireFromString("250.75"),
	}

	got, err := repo.Update(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, arg.TransactionDate, got.TransactionDate)
	require.Equal(t, arg.Type, got.Type)
	require.Equal(t, arg.Category, got.Category)
	require.Equal(t, arg.Comment, got.Comment)
	require.True(t, arg.Amount.Equal(got.Amount))
	require.Equal(t, created.CreatedAt, got.CreatedAt)

	other := arg
	other.Owner = "someone-else"
	_, err = repo.Update(context.Background(), other)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)

	missing := arg
	missing.ID = uuid.New()
	_, err = repo.Update(context.Background(), missing)
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
