package services

import (
	"context"

	"bankledger/internal/core/domain"
	portsrepo "bankledger/internal/core/ports/repositories"
	portssvc "bankledger/internal/core/ports/services"
)

// reportingService provides read-only views over accounts and history.
type reportingService struct {
	accountRepo portsrepo.AccountRepository
	ledgerRepo  portsrepo.LedgerRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountRepository, ledgerRepo portsrepo.LedgerRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetAccountDetails returns the account record. PIN authentication is the
// caller's responsibility.
func (s *reportingService) GetAccountDetails(ctx context.Context, accountNumber int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByNumber(ctx, accountNumber)
}

// GetHistory returns the account's ledger entries newest first. An existing
// account with no entries yields an empty slice, not an error; an unknown
// account yields not-found.
func (s *reportingService) GetHistory(ctx context.Context, accountNumber int64, limit int) ([]domain.LedgerEntry, error) {
	if _, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber); err != nil {
		return nil, err
	}
	return s.ledgerRepo.EntriesByAccount(ctx, accountNumber, limit)
}

// ListAllAccounts is the unfiltered full scan behind the admin listing.
func (s *reportingService) ListAllAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}
