package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bankledger/internal/apperrors"
	"bankledger/internal/core/domain"
	portsrepo "bankledger/internal/core/ports/repositories"
	"bankledger/internal/models"
)

// PgxLedgerRepository is the atomic write path for balances. Every movement
// locks the touched account rows, mutates the balance and appends the
// matching ledger entries in one transaction, so balances and entries can
// never drift apart.
type PgxLedgerRepository struct {
	BaseRepository
}

// NewLedgerRepository creates a new repository for balance movements and
// ledger entries.
func NewLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// lockAccount fetches one account row under FOR UPDATE.
func lockAccount(ctx context.Context, tx pgx.Tx, accountNumber int64) (models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1 FOR UPDATE;`

	m, err := scanAccount(tx.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Account{}, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountNumber)
		}
		return models.Account{}, fmt.Errorf("failed to lock account %d: %w", accountNumber, err)
	}
	return m, nil
}

// lockAccountPair fetches both transfer rows in a single FOR UPDATE query.
// Rows are locked in ascending account-number order so two concurrent
// opposite-direction transfers cannot deadlock.
func lockAccountPair(ctx context.Context, tx pgx.Tx, a, b int64) (map[int64]models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_number = ANY($1)
		ORDER BY account_number
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, []int64{a, b})
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts %d and %d: %w", a, b, err)
	}
	defer rows.Close()

	locked := make(map[int64]models.Account, 2)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked account row: %w", err)
		}
		locked[m.AccountNumber] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked account rows: %w", err)
	}

	for _, n := range []int64{a, b} {
		if _, ok := locked[n]; !ok {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, n)
		}
	}
	return locked, nil
}

func setBalance(ctx context.Context, tx pgx.Tx, accountNumber int64, balance decimal.Decimal) error {
	_, err := tx.Exec(ctx, `UPDATE accounts SET balance = $2 WHERE account_number = $1;`, accountNumber, balance)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %d: %w", accountNumber, err)
	}
	return nil
}

func insertEntry(ctx context.Context, tx pgx.Tx, accountNumber int64, kind domain.EntryKind, amount decimal.Decimal, details string, at time.Time) error {
	query := `
		INSERT INTO ledger_entries (account_number, kind, amount, details, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, query, accountNumber, kind, amount, details, at); err != nil {
		return fmt.Errorf("failed to insert %s entry for account %d: %w", kind, accountNumber, err)
	}
	return nil
}

// Credit adds amount to the account balance and appends one entry.
func (r *PgxLedgerRepository) Credit(ctx context.Context, accountNumber int64, amount decimal.Decimal, kind domain.EntryKind, details string) (*domain.Account, error) {
	var updated domain.Account

	err := r.RunAtomic(ctx, func(tx pgx.Tx) error {
		locked, err := lockAccount(ctx, tx, accountNumber)
		if err != nil {
			return err
		}

		locked.Balance = locked.Balance.Add(amount)
		if err := setBalance(ctx, tx, accountNumber, locked.Balance); err != nil {
			return err
		}
		if err := insertEntry(ctx, tx, accountNumber, kind, amount, details, time.Now().UTC()); err != nil {
			return err
		}

		updated = toDomainAccount(locked)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Debit subtracts amount from the account balance, enforcing the minimum
// balance floor against the locked row, and appends one entry.
func (r *PgxLedgerRepository) Debit(ctx context.Context, accountNumber int64, amount, floor decimal.Decimal, kind domain.EntryKind, details string) (*domain.Account, error) {
	var updated domain.Account

	err := r.RunAtomic(ctx, func(tx pgx.Tx) error {
		locked, err := lockAccount(ctx, tx, accountNumber)
		if err != nil {
			return err
		}

		remaining := locked.Balance.Sub(amount)
		if remaining.LessThan(floor) {
			return fmt.Errorf("%w: account %d balance %s cannot cover %s with floor %s",
				apperrors.ErrInsufficientFunds, accountNumber, locked.Balance, amount, floor)
		}

		locked.Balance = remaining
		if err := setBalance(ctx, tx, accountNumber, locked.Balance); err != nil {
			return err
		}
		if err := insertEntry(ctx, tx, accountNumber, kind, amount, details, time.Now().UTC()); err != nil {
			return err
		}

		updated = toDomainAccount(locked)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Transfer debits fromAccount and credits toAccount in one transaction,
// appending a TRANSFER_OUT and a TRANSFER_IN entry that share a timestamp.
// There is no state in which one side is applied and the other is not.
func (r *PgxLedgerRepository) Transfer(ctx context.Context, fromAccount, toAccount int64, amount, floor decimal.Decimal) (*domain.Account, *domain.Account, error) {
	var updatedFrom, updatedTo domain.Account

	err := r.RunAtomic(ctx, func(tx pgx.Tx) error {
		locked, err := lockAccountPair(ctx, tx, fromAccount, toAccount)
		if err != nil {
			return err
		}

		from := locked[fromAccount]
		to := locked[toAccount]

		remaining := from.Balance.Sub(amount)
		if remaining.LessThan(floor) {
			return fmt.Errorf("%w: account %d balance %s cannot cover %s with floor %s",
				apperrors.ErrInsufficientFunds, fromAccount, from.Balance, amount, floor)
		}

		from.Balance = remaining
		to.Balance = to.Balance.Add(amount)

		batch := &pgx.Batch{}
		batch.Queue(`UPDATE accounts SET balance = $2 WHERE account_number = $1;`, from.AccountNumber, from.Balance)
		batch.Queue(`UPDATE accounts SET balance = $2 WHERE account_number = $1;`, to.AccountNumber, to.Balance)
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to apply transfer balance updates: %w", err)
		}

		now := time.Now().UTC()
		if err := insertEntry(ctx, tx, fromAccount, domain.TransferOut, amount, fmt.Sprintf("To Acc %d", toAccount), now); err != nil {
			return err
		}
		if err := insertEntry(ctx, tx, toAccount, domain.TransferIn, amount, fmt.Sprintf("From Acc %d", fromAccount), now); err != nil {
			return err
		}

		updatedFrom = toDomainAccount(from)
		updatedTo = toDomainAccount(to)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &updatedFrom, &updatedTo, nil
}

// CreditInterest computes balance*rate against the locked balance, credits
// it and appends one INTEREST entry.
func (r *PgxLedgerRepository) CreditInterest(ctx context.Context, accountNumber int64, rate decimal.Decimal) (decimal.Decimal, *domain.Account, error) {
	var interest decimal.Decimal
	var updated domain.Account

	err := r.RunAtomic(ctx, func(tx pgx.Tx) error {
		locked, err := lockAccount(ctx, tx, accountNumber)
		if err != nil {
			return err
		}

		interest = locked.Balance.Mul(rate).Round(4)
		locked.Balance = locked.Balance.Add(interest)

		if err := setBalance(ctx, tx, accountNumber, locked.Balance); err != nil {
			return err
		}
		if err := insertEntry(ctx, tx, accountNumber, domain.Interest, interest, "Annual Credit", time.Now().UTC()); err != nil {
			return err
		}

		updated = toDomainAccount(locked)
		return nil
	})
	if err != nil {
		return decimal.Zero, nil, err
	}
	return interest, &updated, nil
}

// AccountsWithPositiveBalance snapshots the accounts qualifying for an
// interest pass at invocation time.
func (r *PgxLedgerRepository) AccountsWithPositiveBalance(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE balance > 0 ORDER BY account_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot accounts for interest: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// EntriesByAccount lists an account's entries newest first. Timestamp is
// the primary ordering key; entry id breaks ties for a stable order.
func (r *PgxLedgerRepository) EntriesByAccount(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT entry_id, account_number, kind, amount, details, created_at
		FROM ledger_entries
		WHERE account_number = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, accountNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for account %d: %w", accountNumber, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(&m.EntryID, &m.AccountNumber, &m.Kind, &m.Amount, &m.Details, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, domain.LedgerEntry{
			EntryID:       m.EntryID,
			AccountNumber: m.AccountNumber,
			Kind:          domain.EntryKind(m.Kind),
			Amount:        m.Amount,
			Details:       m.Details,
			CreatedAt:     m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return entries, nil
}
