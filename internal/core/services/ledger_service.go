package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"bankledger/internal/apperrors"
	"bankledger/internal/core/domain"
	portsrepo "bankledger/internal/core/ports/repositories"
	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/middleware"
)

// ledgerService implements deposit, withdraw, transfer and interest accrual.
// It is the sole writer of balances; every balance change commits together
// with its ledger entries inside the repository's transaction.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepository
	minBalance decimal.Decimal
}

// NewLedgerService creates the ledger engine. minBalance is the floor no
// debit may breach.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, minBalance decimal.Decimal) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		minBalance: minBalance,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Deposit credits amount to the account and returns the new balance.
func (s *ledgerService) Deposit(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: deposit amount %s must be positive", apperrors.ErrValidation, amount)
	}

	account, err := s.ledgerRepo.Credit(ctx, accountNumber, amount, domain.Deposit, "Cash Deposit")
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// Withdraw debits amount from the account, honoring the minimum balance
// floor, and returns the new balance.
func (s *ledgerService) Withdraw(ctx context.Context, accountNumber int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: withdrawal amount %s must be positive", apperrors.ErrValidation, amount)
	}

	account, err := s.ledgerRepo.Debit(ctx, accountNumber, amount, s.minBalance, domain.Withdraw, "Cash Withdrawal")
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// Transfer moves amount between two accounts as one atomic unit and returns
// both new balances.
func (s *ledgerService) Transfer(ctx context.Context, fromAccount, toAccount int64, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if fromAccount == toAccount {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: cannot transfer to the same account %d", apperrors.ErrValidation, fromAccount)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: transfer amount %s must be positive", apperrors.ErrValidation, amount)
	}

	from, to, err := s.ledgerRepo.Transfer(ctx, fromAccount, toAccount, amount, s.minBalance)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return from.Balance, to.Balance, nil
}

// ApplyInterest credits balance*rate to every account holding a positive
// balance. The qualifying accounts are snapshotted once; each account is
// then its own atomic unit, so one failure never blocks the rest. Failures
// are reported per account instead of aborting the pass.
func (s *ledgerService) ApplyInterest(ctx context.Context, rate decimal.Decimal) ([]domain.InterestCredit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if rate.LessThanOrEqual(decimal.Zero) || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: interest rate %s must be in (0, 1]", apperrors.ErrValidation, rate)
	}

	snapshot, err := s.ledgerRepo.AccountsWithPositiveBalance(ctx)
	if err != nil {
		return nil, err
	}

	credits := make([]domain.InterestCredit, 0, len(snapshot))
	for _, account := range snapshot {
		credit := domain.InterestCredit{
			AccountNumber: account.AccountNumber,
			Name:          account.Name,
		}

		interest, updated, err := s.ledgerRepo.CreditInterest(ctx, account.AccountNumber, rate)
		if err != nil {
			logger.Warn("interest credit failed",
				slog.Int64("account_number", account.AccountNumber),
				slog.String("error", err.Error()))
			credit.Err = err.Error()
		} else {
			credit.Interest = interest
			credit.NewBalance = updated.Balance
		}
		credits = append(credits, credit)
	}

	logger.Info("interest pass completed",
		slog.String("rate", rate.String()),
		slog.Int("accounts", len(credits)))
	return credits, nil
}
