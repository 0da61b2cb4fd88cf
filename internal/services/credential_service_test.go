package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"placeholder/internal/models/db_models"
	"placeholder/internal/models/request_models"
	"placeholder/internal/repositories"
	mem "placeholder/pkg/memcache"
	"placeholder/pkg/utils"
)

func newCredentialService(f *fixture, cache mem.CredentialCache) CredentialServiceInterface {
	return NewCredentialService(
		f.accountRepo,
		repositories.NewCredentialRepository(f.db),
		utils.NewTokenSigner("test-secret"),
		cache,
		time.Minute,
	)
}

func login(email string) request_models.LoginRequest {
	return request_models.LoginRequest{Email: email, Password: "s3cret-pass"}
}

func TestCredentialService_IssueAndResolve(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "auth@example.com")
	svc := newCredentialService(f, mem.NewCredentialKeys())

	token, err := svc.Issue(context.Background(), login("auth@EXAMPLE.com"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	account, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, int64(1), f.count(t, &db_models.Credential{}))
}

func TestCredentialService_ReissueInvalidatesPreviousToken(t *testing.T) {
	f := newFixture(t)
	f.register(t, "rotate@example.com")
	cache := mem.NewCredentialKeys()
	svc := newCredentialService(f, cache)

	first, err := svc.Issue(context.Background(), login("rotate@example.com"))
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), login("rotate@example.com"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = svc.Resolve(context.Background(), first)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = svc.Resolve(context.Background(), second)
	assert.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, int64(1), f.count(t, &db_models.Credential{}))
}

func TestCredentialService_ResolveWithColdCache(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "cold@example.com")

	token, err := newCredentialService(f, mem.NewCredentialKeys()).Issue(context.Background(), login("cold@example.com"))
	require.NoError(t, err)

	// a fresh process has an empty cache and must fall back to the database
	account, err := newCredentialService(f, mem.NewCredentialKeys()).Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
}

func TestCredentialService_BadCredentials(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bad@example.com")
	svc := newCredentialService(f, mem.NewCredentialKeys())

	_, err := svc.Issue(context.Background(), request_models.LoginRequest{Email: "bad@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Issue(context.Background(), login("nobody@example.com"))
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	assert.Zero(t, f.count(t, &db_models.Credential{}))
}

func TestCredentialService_ResolveRejectsForeignToken(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "foreign@example.com")
	svc := newCredentialService(f, mem.NewCredentialKeys())

	forged, err := utils.NewTokenSigner("other-secret").CreateToken(id, "whatever")
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), forged)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)

	_, err = svc.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
}

func TestCredentialService_ResolveAfterAccountDeleted(t *testing.T) {
	f := newFixture(t)
	id := f.register(t, "gone@example.com")
	svc := newCredentialService(f, mem.NewCredentialKeys())

	token, err := svc.Issue(context.Background(), login("gone@example.com"))
	require.NoError(t, err)

	deleted, err := f.accountRepo.DeleteAccount(context.Background(), id)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	assert.Zero(t, f.count(t, &db_models.Credential{}))
}
