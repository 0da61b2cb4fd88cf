package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"placeholder/internal/models/db_models"
	"placeholder/internal/models/request_models"
	"placeholder/internal/repositories"
	mem "placeholder/pkg/memcache"
	"placeholder/pkg/utils"
)

const credentialKeyBytes = 32

type CredentialServiceInterface interface {
	// Issue exchanges email and password for a token, invalidating any
	// token issued before.
	Issue(ctx context.Context, request request_models.LoginRequest) (string, error)

	// Resolve returns the account a token belongs to or utils.ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (*db_models.Account, error)
}

type CredentialService struct {
	accountRepo    repositories.AccountRepository
	credentialRepo repositories.CredentialRepositoryInterface
	signer         *utils.TokenSigner
	cache          mem.CredentialCache
	cacheTTL       time.Duration
}

func NewCredentialService(
	accountRepo repositories.AccountRepository,
	credentialRepo repositories.CredentialRepositoryInterface,
	signer *utils.TokenSigner,
	cache mem.CredentialCache,
	cacheTTL time.Duration,
) CredentialServiceInterface {
	return &CredentialService{
		accountRepo:    accountRepo,
		credentialRepo: credentialRepo,
		signer:         signer,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

func (s *CredentialService) Issue(ctx context.Context, request request_models.LoginRequest) (string, error) {
	startTime := time.Now()

	account, err := s.accountRepo.FindByEmail(ctx, NormalizeEmail(request.Email))
	if err != nil {
		return "", dbError(err)
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	log.Debug().Dur("elapsed", time.Since(startTime)).Msg("password verified")

	previous, err := s.credentialRepo.FindByAccountId(ctx, account.ID)
	if err != nil {
		return "", dbError(err)
	}

	key, err := utils.GenerateSecureToken(credentialKeyBytes)
	if err != nil {
		return "", err
	}

	credential := &db_models.Credential{
		AccountID: account.ID,
		Key:       key,
		IssuedAt:  time.Now().Unix(),
	}
	if err := s.credentialRepo.Upsert(ctx, credential); err != nil {
		return "", dbError(err)
	}

	if previous != nil {
		s.cache.Delete(previous.Key)
	}
	s.cache.Set(key, account.ID, s.cacheTTL)

	token, err := s.signer.CreateToken(account.ID, key)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("account_id", account.ID.String()).
		Dur("elapsed", time.Since(startTime)).
		Msg("credential issued")

	return token, nil
}

func (s *CredentialService) Resolve(ctx context.Context, token string) (*db_models.Account, error) {
	claims, err := s.signer.ValidateToken(token)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	if cached, ok := s.cache.Get(claims.ID); !ok || cached != accountID {
		credential, err := s.credentialRepo.FindByAccountId(ctx, accountID)
		if err != nil {
			return nil, dbError(err)
		}
		if credential == nil || credential.Key != claims.ID {
			return nil, utils.ErrUnauthenticated
		}
		s.cache.Set(credential.Key, accountID, s.cacheTTL)
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	if account == nil {
		return nil, utils.ErrUnauthenticated
	}
	return account, nil
}
