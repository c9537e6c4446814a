package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"bankledger/internal/apperrors"
	portsrepo "bankledger/internal/core/ports/repositories"
	portssvc "bankledger/internal/core/ports/services"
)

// authService checks account PINs and the process-wide admin secret.
type authService struct {
	accountRepo portsrepo.AccountRepository
	adminSecret string
}

// NewAuthService creates a new auth service. adminSecret is injected
// configuration, never stored per account.
func NewAuthService(accountRepo portsrepo.AccountRepository, adminSecret string) portssvc.AuthSvcFacade {
	return &authService{
		accountRepo: accountRepo,
		adminSecret: adminSecret,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Authenticate compares pin against the stored PIN for the account. A
// missing account returns false rather than an error, so a caller cannot
// tell a wrong PIN from a nonexistent account.
func (s *authService) Authenticate(ctx context.Context, accountNumber int64, pin string) (bool, error) {
	stored, err := s.accountRepo.FindPIN(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(pin)) == 1, nil
}

// AuthorizeAdmin compares the supplied secret against the configured admin
// secret in constant time. It fails closed: an empty configured secret
// denies everything.
func (s *authService) AuthorizeAdmin(secret string) error {
	if s.adminSecret == "" {
		return apperrors.ErrAccessDenied
	}
	if subtle.ConstantTimeCompare([]byte(s.adminSecret), []byte(secret)) != 1 {
		return apperrors.ErrAccessDenied
	}
	return nil
}
