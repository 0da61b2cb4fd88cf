package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"placeholder/internal/infra/infratest"
	"placeholder/internal/models/request_models"
	"placeholder/internal/repositories"
)

type fixture struct {
	db          *gorm.DB
	accountRepo repositories.AccountRepository
	composer    *AccountComposer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := infratest.NewDB(t)
	accountRepo := repositories.NewAccountRepository(db)
	return &fixture{
		db:          db,
		accountRepo: accountRepo,
		composer:    NewAccountComposer(accountRepo),
	}
}

func signUp(email string) request_models.SignUpRequest {
	return request_models.SignUpRequest{
		Email:    email,
		Password: "s3cret-pass",
		Name:     "Leanne Graham",
		Username: "Bret",
		Phone:    "1-770-736-8031",
		Website:  "hildegard.org",
	}
}

func geo(lat, lng string) *request_models.GeoRequest {
	la := decimal.RequireFromString(lat)
	ln := decimal.RequireFromString(lng)
	return &request_models.GeoRequest{Lat: &la, Lng: &ln}
}

func address(street string, g *request_models.GeoRequest) *request_models.AddressRequest {
	return &request_models.AddressRequest{
		Street:  street,
		Suite:   "Apt. 556",
		City:    "Gwenborough",
		Zipcode: "92998-3874",
		Geo:     g,
	}
}

// register creates an account and returns its id.
func (f *fixture) register(t *testing.T, email string) uuid.UUID {
	t.Helper()
	account, err := f.composer.Create(context.Background(), signUp(email))
	require.NoError(t, err)
	return account.ID
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
