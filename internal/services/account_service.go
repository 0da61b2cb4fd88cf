package services

import (
	"context"

	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/internal/models/response_models"
	"placeholder/internal/repositories"
	"placeholder/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	ListAccounts(ctx context.Context, list request_models.ListRequest) ([]response_models.AccountResponse, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, patch request_models.AccountPatchRequest) (*response_models.AccountResponse, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	composer    *AccountComposer
}

func NewAccountService(accountRepo repositories.AccountRepository, composer *AccountComposer) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		composer:    composer,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	account, err := a.composer.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) ListAccounts(ctx context.Context, list request_models.ListRequest) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.ListAccounts(ctx, list)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewAccountResponses(accounts), nil
}

func (a *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateAccount(ctx context.Context, id uuid.UUID, patch request_models.AccountPatchRequest) (*response_models.AccountResponse, error) {
	account, err := a.composer.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}

// DeleteAccount removes the account; its posts, albums, todos and credential
// go with it while comments and photos lose their attribution.
func (a *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	deleted, err := a.accountRepo.DeleteAccount(ctx, id)
	if err != nil {
		return dbError(err)
	}
	if !deleted {
		return utils.ErrAccountNotFound
	}
	return nil
}
