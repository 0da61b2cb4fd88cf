package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"placeholder/internal/models/db_models"
	"placeholder/internal/models/request_models"
	"placeholder/internal/repositories"
	"placeholder/pkg/utils"
)

const (
	msgEmailTaken   = "account with this email already exists."
	msgCompanyTaken = "company with this name already exists."
	msgBlank        = "This field may not be blank."
	msgRequired     = "This field is required."
)

// geoLimit is the first value that no longer fits decimal(12,9).
var geoLimit = decimal.NewFromInt(1000)

// AccountComposer writes an account and its nested address, geo and company
// rows in one transaction. A failure anywhere leaves no rows behind.
type AccountComposer struct {
	accountRepo repositories.AccountRepository
}

func NewAccountComposer(accountRepo repositories.AccountRepository) *AccountComposer {
	return &AccountComposer{accountRepo: accountRepo}
}

// Create registers a new account. The returned account has its profile
// preloaded.
func (c *AccountComposer) Create(ctx context.Context, request request_models.SignUpRequest) (*db_models.Account, error) {
	email := NormalizeEmail(request.Email)

	verr := &utils.ValidationError{}
	checkPassword(verr, request.Password)
	checkAddress(verr, request.Address)
	if verr.HasErrors() {
		return nil, verr
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Email:        email,
		Name:         request.Name,
		Username:     request.Username,
		Phone:        request.Phone,
		Website:      request.Website,
		PasswordHash: hashedPassword,
	}

	err = c.accountRepo.Transaction(ctx, func(repo repositories.AccountRepository) error {
		existing, err := repo.FindByEmail(ctx, email)
		if err != nil {
			return dbError(err)
		}
		if existing != nil {
			return utils.NewValidationError("email", msgEmailTaken)
		}

		if request.Address != nil {
			address, err := createAddress(ctx, repo, request.Address)
			if err != nil {
				return err
			}
			account.AddressID = &address.ID
		}

		if request.Company != nil {
			company, err := createCompany(ctx, repo, request.Company)
			if err != nil {
				return err
			}
			account.CompanyID = &company.ID
		}

		if err := repo.InsertAccount(ctx, account); err != nil {
			return uniqueViolation(err, "email", msgEmailTaken)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reload(ctx, account.ID)
}

// Update applies patch to the account with the given id. Nested address and
// company rows are changed in place; when the account has none yet they are
// created the same way Create does.
func (c *AccountComposer) Update(ctx context.Context, id uuid.UUID, patch request_models.AccountPatchRequest) (*db_models.Account, error) {
	verr := &utils.ValidationError{}
	if patch.Password != nil {
		checkPassword(verr, *patch.Password)
	}
	checkAddressPatch(verr, patch.Address)
	checkNotBlank(verr, "email", patch.Email)
	checkNotBlank(verr, "name", patch.Name)
	checkNotBlank(verr, "username", patch.Username)
	if verr.HasErrors() {
		return nil, verr
	}

	var hashedPassword string
	if patch.Password != nil {
		var err error
		if hashedPassword, err = utils.HashPassword(*patch.Password); err != nil {
			return nil, err
		}
	}

	err := c.accountRepo.Transaction(ctx, func(repo repositories.AccountRepository) error {
		account, err := repo.FindById(ctx, id)
		if err != nil {
			return dbError(err)
		}
		if account == nil {
			return utils.ErrAccountNotFound
		}

		if patch.Email != nil {
			email := NormalizeEmail(*patch.Email)
			if email != account.Email {
				existing, err := repo.FindByEmail(ctx, email)
				if err != nil {
					return dbError(err)
				}
				if existing != nil {
					return utils.NewValidationError("email", msgEmailTaken)
				}
				account.Email = email
			}
		}
		if patch.Name != nil {
			account.Name = *patch.Name
		}
		if patch.Username != nil {
			account.Username = *patch.Username
		}
		if patch.Phone != nil {
			account.Phone = *patch.Phone
		}
		if patch.Website != nil {
			account.Website = *patch.Website
		}
		if hashedPassword != "" {
			account.PasswordHash = hashedPassword
		}

		if patch.Address != nil {
			if account.Address == nil {
				request, err := fullAddress(patch.Address)
				if err != nil {
					return err
				}
				address, err := createAddress(ctx, repo, request)
				if err != nil {
					return err
				}
				account.AddressID = &address.ID
			} else if err := updateAddress(ctx, repo, account.Address, patch.Address); err != nil {
				return err
			}
		}

		if patch.Company != nil {
			if account.Company == nil {
				company, err := createCompany(ctx, repo, patch.Company)
				if err != nil {
					return err
				}
				account.CompanyID = &company.ID
			} else if account.Company.Name != patch.Company.Name {
				account.Company.Name = patch.Company.Name
				if err := repo.SaveCompany(ctx, account.Company); err != nil {
					return uniqueViolation(err, "company.name", msgCompanyTaken)
				}
			}
		}

		if err := repo.SaveAccount(ctx, account); err != nil {
			return uniqueViolation(err, "email", msgEmailTaken)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reload(ctx, id)
}

func (c *AccountComposer) reload(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	account, err := c.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, dbError(err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func createAddress(ctx context.Context, repo repositories.AccountRepository, request *request_models.AddressRequest) (*db_models.Address, error) {
	address := &db_models.Address{
		Street:  request.Street,
		Suite:   request.Suite,
		City:    request.City,
		Zipcode: request.Zipcode,
	}

	if request.Geo != nil {
		geo := &db_models.Geo{Lat: *request.Geo.Lat, Lng: *request.Geo.Lng}
		if err := repo.InsertGeo(ctx, geo); err != nil {
			return nil, dbError(err)
		}
		address.GeoID = &geo.ID
	}

	if err := repo.InsertAddress(ctx, address); err != nil {
		return nil, dbError(err)
	}
	return address, nil
}

// updateAddress changes only the fields present in patch. A geo sent for an
// address that has none must carry both coordinates.
func updateAddress(ctx context.Context, repo repositories.AccountRepository, address *db_models.Address, patch *request_models.AddressPatchRequest) error {
	if patch.Geo != nil {
		if address.Geo != nil {
			if patch.Geo.Lat != nil {
				address.Geo.Lat = *patch.Geo.Lat
			}
			if patch.Geo.Lng != nil {
				address.Geo.Lng = *patch.Geo.Lng
			}
			if err := repo.SaveGeo(ctx, address.Geo); err != nil {
				return dbError(err)
			}
		} else {
			verr := &utils.ValidationError{}
			request := fullGeo(verr, patch.Geo)
			if verr.HasErrors() {
				return verr
			}
			geo := &db_models.Geo{Lat: *request.Lat, Lng: *request.Lng}
			if err := repo.InsertGeo(ctx, geo); err != nil {
				return dbError(err)
			}
			address.GeoID = &geo.ID
		}
	}

	if patch.Street != nil {
		address.Street = *patch.Street
	}
	if patch.Suite != nil {
		address.Suite = *patch.Suite
	}
	if patch.City != nil {
		address.City = *patch.City
	}
	if patch.Zipcode != nil {
		address.Zipcode = *patch.Zipcode
	}

	if err := repo.SaveAddress(ctx, address); err != nil {
		return dbError(err)
	}
	return nil
}

// fullAddress builds a new address from patch, reporting the fields it is missing.
func fullAddress(patch *request_models.AddressPatchRequest) (*request_models.AddressRequest, error) {
	verr := &utils.ValidationError{}
	request := &request_models.AddressRequest{
		Street:  requiredField(verr, "address.street", patch.Street),
		City:    requiredField(verr, "address.city", patch.City),
		Zipcode: requiredField(verr, "address.zipcode", patch.Zipcode),
	}
	if patch.Suite != nil {
		request.Suite = *patch.Suite
	}
	if patch.Geo != nil {
		request.Geo = fullGeo(verr, patch.Geo)
	}
	if verr.HasErrors() {
		return nil, verr
	}
	return request, nil
}

func fullGeo(verr *utils.ValidationError, patch *request_models.GeoPatchRequest) *request_models.GeoRequest {
	if patch.Lat == nil {
		verr.Add("address.geo.lat", msgRequired)
	}
	if patch.Lng == nil {
		verr.Add("address.geo.lng", msgRequired)
	}
	return &request_models.GeoRequest{Lat: patch.Lat, Lng: patch.Lng}
}

func requiredField(verr *utils.ValidationError, field string, value *string) string {
	if value == nil {
		verr.Add(field, msgRequired)
		return ""
	}
	return *value
}

func createCompany(ctx context.Context, repo repositories.AccountRepository, request *request_models.CompanyRequest) (*db_models.Company, error) {
	company := &db_models.Company{Name: request.Name}
	if err := repo.InsertCompany(ctx, company); err != nil {
		return nil, uniqueViolation(err, "company.name", msgCompanyTaken)
	}
	return company, nil
}

// NormalizeEmail lowercases the domain part, leaving the local part as typed.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at] + strings.ToLower(email[at:])
}

func checkPassword(verr *utils.ValidationError, password string) {
	if len([]rune(password)) < utils.MinPasswordLength {
		verr.Add("password", fmt.Sprintf("Ensure this field has at least %d characters.", utils.MinPasswordLength))
	}
}

func checkNotBlank(verr *utils.ValidationError, field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		verr.Add(field, msgBlank)
	}
}

func checkAddressPatch(verr *utils.ValidationError, address *request_models.AddressPatchRequest) {
	if address == nil {
		return
	}
	checkNotBlank(verr, "address.street", address.Street)
	checkNotBlank(verr, "address.city", address.City)
	checkNotBlank(verr, "address.zipcode", address.Zipcode)
	if address.Geo == nil {
		return
	}
	if address.Geo.Lat != nil {
		checkCoordinate(verr, "address.geo.lat", address.Geo.Lat)
	}
	if address.Geo.Lng != nil {
		checkCoordinate(verr, "address.geo.lng", address.Geo.Lng)
	}
}

func checkAddress(verr *utils.ValidationError, address *request_models.AddressRequest) {
	if address == nil || address.Geo == nil {
		return
	}
	checkCoordinate(verr, "address.geo.lat", address.Geo.Lat)
	checkCoordinate(verr, "address.geo.lng", address.Geo.Lng)
}

// checkCoordinate rejects values that do not fit 3 integer and 9 fractional digits.
func checkCoordinate(verr *utils.ValidationError, field string, value *decimal.Decimal) {
	if value == nil {
		verr.Add(field, msgRequired)
		return
	}
	if value.Abs().GreaterThanOrEqual(geoLimit) {
		verr.Add(field, "Ensure that there are no more than 3 digits before the decimal point.")
	}
	if !value.Equal(value.Round(9)) {
		verr.Add(field, "Ensure that there are no more than 9 decimal places.")
	}
}
