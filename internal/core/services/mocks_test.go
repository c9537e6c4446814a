package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bankledger/internal/core/domain"
	portsrepo "bankledger/internal/core/ports/repositories"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) CreateAccount(ctx context.Context, account domain.Account, opening domain.LedgerEntry) (*domain.Account, error) {
	args := m.Called(ctx, account, opening)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountNumber int64) error {
	args := m.Called(ctx, accountNumber)
	return args.Error(0)
}

func (m *MockAccountRepository) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindPIN(ctx context.Context, accountNumber int64) (string, error) {
	args := m.Called(ctx, accountNumber)
	return args.String(0), args.Error(1)
}

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) Credit(ctx context.Context, accountNumber int64, amount decimal.Decimal, kind domain.EntryKind, details string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, amount, kind, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) Debit(ctx context.Context, accountNumber int64, amount, floor decimal.Decimal, kind domain.EntryKind, details string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber, amount, floor, kind, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) Transfer(ctx context.Context, fromAccount, toAccount int64, amount, floor decimal.Decimal) (*domain.Account, *domain.Account, error) {
	args := m.Called(ctx, fromAccount, toAccount, amount, floor)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Get(1).(*domain.Account), args.Error(2)
}

func (m *MockLedgerRepository) CreditInterest(ctx context.Context, accountNumber int64, rate decimal.Decimal) (decimal.Decimal, *domain.Account, error) {
	args := m.Called(ctx, accountNumber, rate)
	if args.Get(1) == nil {
		return decimal.Zero, nil, args.Error(2)
	}
	return args.Get(0).(decimal.Decimal), args.Get(1).(*domain.Account), args.Error(2)
}

func (m *MockLedgerRepository) AccountsWithPositiveBalance(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) EntriesByAccount(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountNumber, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}
