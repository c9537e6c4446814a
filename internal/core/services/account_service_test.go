package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"bankledger/internal/apperrors"
	"bankledger/internal/core/domain"
	portssvc "bankledger/internal/core/ports/services"
	"bankledger/internal/core/services"
	"bankledger/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, minBalance)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "jane doe",
		Phone:          "9876543210",
		PIN:            "4321",
		InitialDeposit: decimal.NewFromInt(500),
	}

	suite.mockRepo.On("CreateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			opening := args.Get(2).(domain.LedgerEntry)

			suite.Equal("Jane Doe", account.Name) // title-cased on write
			suite.Equal("9876543210", account.Phone)
			suite.Equal(domain.EmailUnset, account.Email)
			suite.Equal("4321", account.PIN)
			suite.True(account.Balance.Equal(decimal.NewFromInt(500)))

			suite.Equal(domain.Deposit, opening.Kind)
			suite.True(opening.Amount.Equal(decimal.NewFromInt(500)))
			suite.Equal("Account Opened", opening.Details)
		}).
		Return(&domain.Account{AccountNumber: 1, Name: "Jane Doe", Balance: decimal.NewFromInt(500)}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(1), account.AccountNumber)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DepositBelowMinimum() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Jane Doe",
		Phone:          "9876543210",
		PIN:            "4321",
		InitialDeposit: decimal.NewFromInt(499),
	}

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BadPIN() {
	ctx := context.Background()

	for _, pin := range []string{"12", "12345", "abcd", "12a4"} {
		req := dto.CreateAccountRequest{
			Name:           "Jane Doe",
			Phone:          "9876543210",
			PIN:            pin,
			InitialDeposit: decimal.NewFromInt(500),
		}
		_, err := suite.service.CreateAccount(ctx, req)
		suite.Require().Error(err, "pin %q should be rejected", pin)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultPIN() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Jane Doe",
		Phone:          "9876543210",
		InitialDeposit: decimal.NewFromInt(600),
	}

	suite.mockRepo.On("CreateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			suite.Equal(domain.DefaultPIN, account.PIN)
		}).
		Return(&domain.Account{AccountNumber: 2}, nil).Once()

	_, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicatePhone() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:           "Jane Doe",
		Phone:          "9876543210",
		PIN:            "4321",
		InitialDeposit: decimal.NewFromInt(500),
	}

	suite.mockRepo.On("CreateAccount", ctx, mock.AnythingOfType("domain.Account"), mock.AnythingOfType("domain.LedgerEntry")).
		Return(nil, apperrors.ErrDuplicatePhone).Once()

	account, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicatePhone)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestModifyAccount_Name() {
	ctx := context.Background()
	existing := &domain.Account{AccountNumber: 5, Name: "Old Name", Phone: "111", Email: "N/A", PIN: "1234"}

	suite.mockRepo.On("FindAccountByNumber", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			suite.Equal("New Name", account.Name)
		}).
		Return(nil).Once()

	account, err := suite.service.ModifyAccount(ctx, 5, dto.FieldName, "new name")

	suite.Require().NoError(err)
	suite.Equal("New Name", account.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestModifyAccount_BadNewPIN() {
	ctx := context.Background()
	existing := &domain.Account{AccountNumber: 5, PIN: "1234"}

	suite.mockRepo.On("FindAccountByNumber", ctx, int64(5)).Return(existing, nil).Once()

	account, err := suite.service.ModifyAccount(ctx, 5, dto.FieldPIN, "12ab")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestModifyAccount_UnknownField() {
	ctx := context.Background()
	existing := &domain.Account{AccountNumber: 5}

	suite.mockRepo.On("FindAccountByNumber", ctx, int64(5)).Return(existing, nil).Once()

	// Unrecognized selectors are a validation error, not a silent no-op.
	account, err := suite.service.ModifyAccount(ctx, 5, dto.ModifyField("nickname"), "x")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestModifyAccount_DuplicatePhone() {
	ctx := context.Background()
	existing := &domain.Account{AccountNumber: 5, Phone: "111"}

	suite.mockRepo.On("FindAccountByNumber", ctx, int64(5)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicatePhone).Once()

	account, err := suite.service.ModifyAccount(ctx, 5, dto.FieldPhone, "222")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicatePhone)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestModifyAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByNumber", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.ModifyAccount(ctx, 99, dto.FieldName, "x")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteAccount", ctx, int64(99)).Return(apperrors.ErrNotFound).Once()

	// Deleting a nonexistent account is reported, not swallowed.
	err := suite.service.DeleteAccount(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestFindByQuery_EmptyQuery() {
	ctx := context.Background()

	accounts, err := suite.service.FindByQuery(ctx, "   ")

	suite.Require().Error(err)
	suite.Nil(accounts)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SearchAccounts", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestFindByQuery_TrimsQuery() {
	ctx := context.Background()
	expected := []domain.Account{{AccountNumber: 1, Name: "Jane Doe"}}

	suite.mockRepo.On("SearchAccounts", ctx, "jane").Return(expected, nil).Once()

	accounts, err := suite.service.FindByQuery(ctx, "  jane  ")

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}
