package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bankledger/internal/apperrors"
	"bankledger/internal/core/domain"
	portsrepo "bankledger/internal/core/ports/repositories"
	"bankledger/internal/models"
)

const pgUniqueViolation = "23505"

// PgxAccountRepository persists account records in PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		Phone:         m.Phone,
		Email:         m.Email,
		PIN:           m.PIN,
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
	}
}

// isUniqueViolation reports whether err is the phone uniqueness constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// CreateAccount inserts the account and its opening deposit entry in one
// transaction and returns the account with its assigned number.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account, opening domain.LedgerEntry) (*domain.Account, error) {
	created := account

	err := r.RunAtomic(ctx, func(tx pgx.Tx) error {
		insertQuery := `
			INSERT INTO accounts (name, phone, email, pin, balance, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING account_number;
		`
		err := tx.QueryRow(ctx, insertQuery,
			account.Name,
			account.Phone,
			account.Email,
			account.PIN,
			account.Balance,
			account.CreatedAt,
		).Scan(&created.AccountNumber)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: phone %s", apperrors.ErrDuplicatePhone, account.Phone)
			}
			return fmt.Errorf("failed to insert account: %w", err)
		}

		entryQuery := `
			INSERT INTO ledger_entries (account_number, kind, amount, details, created_at)
			VALUES ($1, $2, $3, $4, $5);
		`
		_, err = tx.Exec(ctx, entryQuery,
			created.AccountNumber,
			opening.Kind,
			opening.Amount,
			opening.Details,
			account.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert opening entry for account %d: %w", created.AccountNumber, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

const accountColumns = `account_number, name, phone, email, pin, balance, created_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountNumber,
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.PIN,
		&m.Balance,
		&m.CreatedAt,
	)
	return m, err
}

// FindAccountByNumber retrieves an account by its number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountNumber)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountNumber, err)
	}

	acc := toDomainAccount(m)
	return &acc, nil
}

// UpdateAccount persists the mutable fields of an account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, phone = $3, email = $4, pin = $5
		WHERE account_number = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		account.AccountNumber,
		account.Name,
		account.Phone,
		account.Email,
		account.PIN,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: phone %s", apperrors.ErrDuplicatePhone, account.Phone)
		}
		return fmt.Errorf("failed to update account %d: %w", account.AccountNumber, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, account.AccountNumber)
	}
	return nil
}

// DeleteAccount removes the account and all of its ledger entries as one
// atomic unit. This is the single allowed history rewrite.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountNumber int64) error {
	return r.RunAtomic(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE account_number = $1;`, accountNumber); err != nil {
			return fmt.Errorf("failed to delete ledger entries for account %d: %w", accountNumber, err)
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_number = $1;`, accountNumber)
		if err != nil {
			return fmt.Errorf("failed to delete account %d: %w", accountNumber, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountNumber)
		}
		return nil
	})
}

// SearchAccounts matches the query case-insensitively against name or phone.
func (r *PgxAccountRepository) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	sqlQuery := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE name ILIKE '%' || $1 || '%' OR phone LIKE '%' || $1 || '%'
		ORDER BY account_number;
	`
	rows, err := r.Pool.Query(ctx, sqlQuery, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListAccounts returns every account, ordered by account number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// FindPIN returns the stored PIN for an account.
func (r *PgxAccountRepository) FindPIN(ctx context.Context, accountNumber int64) (string, error) {
	var pin string
	err := r.Pool.QueryRow(ctx, `SELECT pin FROM accounts WHERE account_number = $1;`, accountNumber).Scan(&pin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountNumber)
		}
		return "", fmt.Errorf("failed to look up pin for account %d: %w", accountNumber, err)
	}
	return pin, nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
