// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/internal/userrepo"
	"github.com/go-petr/money-guard/pkg/dbpkg"
	"github.com/go-petr/money-guard/pkg/passpkg"
	"github.com/go-petr/money-guard/pkg/randompkg"
)

// SeedUser creates random User inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.Password())
	if err != nil {
		t.Fatalf("passpkg.Hash() returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Username(),
		HashedPassword: hashedPassword,
		Email:          randompkg.Email(),
	}

	user, err := userrepo.NewRepoPGS(tx).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userrepo.Create(%+v) returned error: %v", arg, err)
	}

	return user
}
