package response_models

import (
	"placeholder/internal/models/db_models"
)

type AccountLoginResponse struct {
	Token string `json:"token"`
}

type GeoResponse struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type AddressResponse struct {
	Street  string       `json:"street"`
	Suite   string       `json:"suite"`
	City    string       `json:"city"`
	Zipcode string       `json:"zipcode"`
	Geo     *GeoResponse `json:"geo"`
}

type CompanyResponse struct {
	Name string `json:"name"`
}

// AccountResponse never carries the password hash.
type AccountResponse struct {
	ID       string           `json:"id"`
	Email    string           `json:"email"`
	Name     string           `json:"name"`
	Username string           `json:"username"`
	Phone    string           `json:"phone"`
	Website  string           `json:"website"`
	Address  *AddressResponse `json:"address"`
	Company  *CompanyResponse `json:"company"`
}

// geoScale matches the decimal(12,9) column.
const geoScale = 9

func NewAccountResponse(account *db_models.Account) AccountResponse {
	resp := AccountResponse{
		ID:       account.ID.String(),
		Email:    account.Email,
		Name:     account.Name,
		Username: account.Username,
		Phone:    account.Phone,
		Website:  account.Website,
	}

	if account.Address != nil {
		resp.Address = &AddressResponse{
			Street:  account.Address.Street,
			Suite:   account.Address.Suite,
			City:    account.Address.City,
			Zipcode: account.Address.Zipcode,
		}
		if geo := account.Address.Geo; geo != nil {
			resp.Address.Geo = &GeoResponse{
				Lat: geo.Lat.StringFixed(geoScale),
				Lng: geo.Lng.StringFixed(geoScale),
			}
		}
	}

	if account.Company != nil {
		resp.Company = &CompanyResponse{Name: account.Company.Name}
	}

	return resp
}

func NewAccountResponses(accounts []db_models.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, NewAccountResponse(&accounts[i]))
	}
	return out
}
