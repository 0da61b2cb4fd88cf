package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"placeholder/internal/infra/infratest"
	"placeholder/internal/models/db_models"
	"placeholder/internal/models/request_models"
)

func insertAccount(t *testing.T, repo AccountRepository, email string) *db_models.Account {
	t.Helper()
	account := &db_models.Account{Email: email, Name: "n", Username: "u", PasswordHash: "x"}
	require.NoError(t, repo.InsertAccount(context.Background(), account))
	return account
}

func TestAccountRepository_TransactionRollsBack(t *testing.T) {
	db := infratest.NewDB(t)
	repo := NewAccountRepository(db)

	err := repo.Transaction(context.Background(), func(tx AccountRepository) error {
		insertAccount(t, tx, "rollback@example.com")
		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	found, err := repo.FindByEmail(context.Background(), "rollback@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestAccountRepository_FindByIdPreloadsProfile(t *testing.T) {
	db := infratest.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	geo := &db_models.Geo{}
	require.NoError(t, repo.InsertGeo(ctx, geo))
	address := &db_models.Address{Street: "s", City: "c", Zipcode: "z", GeoID: &geo.ID}
	require.NoError(t, repo.InsertAddress(ctx, address))
	company := &db_models.Company{Name: "co"}
	require.NoError(t, repo.InsertCompany(ctx, company))

	account := &db_models.Account{
		Email: "profile@example.com", Name: "n", Username: "u", PasswordHash: "x",
		AddressID: &address.ID, CompanyID: &company.ID,
	}
	require.NoError(t, repo.InsertAccount(ctx, account))

	found, err := repo.FindById(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Address)
	require.NotNil(t, found.Address.Geo)
	assert.Equal(t, geo.ID, found.Address.Geo.ID)
	require.NotNil(t, found.Company)
	assert.Equal(t, "co", found.Company.Name)

	missing, err := repo.FindById(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAccountRepository_DeletingCompanyDetachesAccount(t *testing.T) {
	db := infratest.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	company := &db_models.Company{Name: "gone"}
	require.NoError(t, repo.InsertCompany(ctx, company))
	account := &db_models.Account{Email: "detach@example.com", Name: "n", Username: "u", PasswordHash: "x", CompanyID: &company.ID}
	require.NoError(t, repo.InsertAccount(ctx, account))

	require.NoError(t, db.Delete(&db_models.Company{}, "id = ?", company.ID).Error)

	found, err := repo.FindById(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.CompanyID)
}

func TestAccountRepository_DeletingAddressDetachesAccount(t *testing.T) {
	db := infratest.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	address := &db_models.Address{Street: "s", City: "c", Zipcode: "z"}
	require.NoError(t, repo.InsertAddress(ctx, address))
	account := &db_models.Account{Email: "no-home@example.com", Name: "n", Username: "u", PasswordHash: "x", AddressID: &address.ID}
	require.NoError(t, repo.InsertAccount(ctx, account))

	require.NoError(t, db.Delete(&db_models.Address{}, "id = ?", address.ID).Error)

	found, err := repo.FindById(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.AddressID)
	assert.Nil(t, found.Address)
}

func TestAccountRepository_DeletingGeoDetachesAddress(t *testing.T) {
	db := infratest.NewDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	geo := &db_models.Geo{}
	require.NoError(t, repo.InsertGeo(ctx, geo))
	address := &db_models.Address{Street: "s", City: "c", Zipcode: "z", GeoID: &geo.ID}
	require.NoError(t, repo.InsertAddress(ctx, address))
	account := &db_models.Account{Email: "no-geo@example.com", Name: "n", Username: "u", PasswordHash: "x", AddressID: &address.ID}
	require.NoError(t, repo.InsertAccount(ctx, account))

	require.NoError(t, db.Delete(&db_models.Geo{}, "id = ?", geo.ID).Error)

	found, err := repo.FindById(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Address)
	assert.Equal(t, address.ID, found.Address.ID)
	assert.Nil(t, found.Address.GeoID)
	assert.Nil(t, found.Address.Geo)
}

func TestAccountDeletionCascades(t *testing.T) {
	db := infratest.NewDB(t)
	accounts := NewAccountRepository(db)
	albums := NewAlbumRepository(db)
	todos := NewToDoRepository(db)
	ctx := context.Background()

	owner := insertAccount(t, accounts, "owner@example.com")
	require.NoError(t, albums.Insert(ctx, &db_models.Album{AccountID: owner.ID, Title: "album"}))
	require.NoError(t, todos.Insert(ctx, &db_models.ToDo{AccountID: owner.ID, Title: "todo"}))

	deleted, err := accounts.DeleteAccount(ctx, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	remainingAlbums, err := albums.ListAlbums(ctx, request_models.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, remainingAlbums)
	remainingToDos, err := todos.ListToDos(ctx, request_models.ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, remainingToDos)

	deleted, err = accounts.DeleteAccount(ctx, owner.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestListPagination(t *testing.T) {
	db := infratest.NewDB(t)
	accounts := NewAccountRepository(db)
	todos := NewToDoRepository(db)
	ctx := context.Background()

	owner := insertAccount(t, accounts, "pages@example.com")
	for _, title := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, todos.Insert(ctx, &db_models.ToDo{AccountID: owner.ID, Title: title}))
	}

	page, err := todos.ListToDos(ctx, request_models.ListRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "3", page[0].Title)
	assert.Equal(t, "4", page[1].Title)

	all, err := todos.ListToDos(ctx, request_models.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestCredentialRepository_UpsertReplacesKey(t *testing.T) {
	db := infratest.NewDB(t)
	accounts := NewAccountRepository(db)
	credentials := NewCredentialRepository(db)
	ctx := context.Background()

	owner := insertAccount(t, accounts, "cred@example.com")
	require.NoError(t, credentials.Upsert(ctx, &db_models.Credential{AccountID: owner.ID, Key: "first", IssuedAt: 1}))
	require.NoError(t, credentials.Upsert(ctx, &db_models.Credential{AccountID: owner.ID, Key: "second", IssuedAt: 2}))

	found, err := credentials.FindByAccountId(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "second", found.Key)
	assert.Equal(t, int64(2), found.IssuedAt)
}
