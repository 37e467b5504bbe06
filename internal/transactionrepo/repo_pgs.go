// Package transactionrepo manages repository layer of transactions.
package transactionrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/money-guard/internal/domain"
	"github.com/go-petr/money-guard/pkg/dbpkg"
	"github.com/go-petr/money-guard/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const columns = `
	id,
	owner,
	to_char(transaction_date, 'YYYY-MM-DD'),
	type,
	category,
	comment,
	amount,
	created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner, t *domain.Transaction) error {
	return row.Scan(
		&t.ID,
		&t.Owner,
		&t.TransactionDate,
		&t.Type,
		&t.Category,
		&t.Comment,
		&t.Amount,
		&t.CreatedAt,
	)
}

const createQuery = `
INSERT INTO transactions (
	id,
	owner,
	transaction_date,
	type,
	category,
	comment,
	amount
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
) RETURNING` + columns

// Create creates the transaction and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.ID,
		arg.Owner,
		arg.TransactionDate,
		arg.Type,
		arg.Category,
		arg.Comment,
		arg.Amount,
	)

	var t domain.Transaction

	if err := scan(row, &t); err != nil {
		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return domain.Transaction{}, domain.ErrUserNotFound
		}

		return domain.Transaction{}, errorspkg.ErrInternal
	}

	return t, nil
}

const listQuery = `
SELECT` + columns + `
FROM transactions
WHERE owner = $1
ORDER BY transaction_date, created_at
`

// List returns all transactions of the owner ordered by date.
func (r *RepoPGS) List(ctx context.Context, owner string) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var t domain.Transaction
		if err := scan(rows, &t); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM transactions
WHERE id = $1 AND owner = $2
`

// Delete removes the owner's transaction with the given id.
func (r *RepoPGS) Delete(ctx context.Context, owner string, id uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id, owner)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

const updateQuery = `
UPDATE transactions
SET
	transaction_date = $3,
	type = $4,
	category = $5,
	comment = $6,
	amount = $7
WHERE id = $1 AND owner = $2
RETURNING` + columns

// Update replaces the editable fields of the owner's transaction with arg.ID.
func (r *RepoPGS) Update(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		arg.ID,
		arg.Owner,
		arg.TransactionDate,
		arg.Type,
		arg.Category,
		arg.Comment,
		arg.Amount,
	)

	var t domain.Transaction

	if err := scan(row, &t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return domain.Transaction{}, errorspkg.ErrInternal
	}

	return t, nil
}
