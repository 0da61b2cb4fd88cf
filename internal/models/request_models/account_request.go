package request_models

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GeoRequest struct {
	Lat *decimal.Decimal `json:"lat" binding:"required"`
	Lng *decimal.Decimal `json:"lng" binding:"required"`
}

type AddressRequest struct {
	Street  string      `json:"street" binding:"required,max=255"`
	Suite   string      `json:"suite" binding:"max=255"`
	City    string      `json:"city" binding:"required,max=100"`
	Zipcode string      `json:"zipcode" binding:"required,max=20"`
	Geo     *GeoRequest `json:"geo"`
}

// AddressPatchRequest is the nested address of a PATCH body; absent fields
// keep their stored value.
type AddressPatchRequest struct {
	Street  *string          `json:"street" binding:"omitempty,max=255"`
	Suite   *string          `json:"suite" binding:"omitempty,max=255"`
	City    *string          `json:"city" binding:"omitempty,max=100"`
	Zipcode *string          `json:"zipcode" binding:"omitempty,max=20"`
	Geo     *GeoPatchRequest `json:"geo"`
}

type GeoPatchRequest struct {
	Lat *decimal.Decimal `json:"lat"`
	Lng *decimal.Decimal `json:"lng"`
}

// ToPatch turns a full address into a patch that sets every field.
func (r *AddressRequest) ToPatch() *AddressPatchRequest {
	if r == nil {
		return nil
	}
	patch := &AddressPatchRequest{
		Street:  &r.Street,
		Suite:   &r.Suite,
		City:    &r.City,
		Zipcode: &r.Zipcode,
	}
	if r.Geo != nil {
		patch.Geo = &GeoPatchRequest{Lat: r.Geo.Lat, Lng: r.Geo.Lng}
	}
	return patch
}

type CompanyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// SignUpRequest is the composite account payload used by registration and PUT.
type SignUpRequest struct {
	Email    string          `json:"email" binding:"required,email,max=255"`
	Password string          `json:"password" binding:"required"`
	Name     string          `json:"name" binding:"required,max=255"`
	Username string          `json:"username" binding:"required,max=255"`
	Phone    string          `json:"phone" binding:"max=20"`
	Website  string          `json:"website" binding:"max=255"`
	Address  *AddressRequest `json:"address"`
	Company  *CompanyRequest `json:"company"`
}

// AccountPatchRequest leaves absent fields untouched.
type AccountPatchRequest struct {
	Email    *string              `json:"email" binding:"omitempty,email,max=255"`
	Password *string              `json:"password"`
	Name     *string              `json:"name" binding:"omitempty,max=255"`
	Username *string              `json:"username" binding:"omitempty,max=255"`
	Phone    *string              `json:"phone" binding:"omitempty,max=20"`
	Website  *string              `json:"website" binding:"omitempty,max=255"`
	Address  *AddressPatchRequest `json:"address"`
	Company  *CompanyRequest      `json:"company"`
}

// ToPatch lets PUT share the update path with PATCH.
func (r SignUpRequest) ToPatch() AccountPatchRequest {
	return AccountPatchRequest{
		Email:    &r.Email,
		Password: &r.Password,
		Name:     &r.Name,
		Username: &r.Username,
		Phone:    &r.Phone,
		Website:  &r.Website,
		Address:  r.Address.ToPatch(),
		Company:  r.Company,
	}
}
