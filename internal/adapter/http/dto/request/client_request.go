package request

import (
	"taskloop/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateClientRequest struct {
	FirstName      string          `json:"first_name" binding:"required,min=2"`
	LastName       string          `json:"last_name" binding:"required,min=2"`
	CompanyName    string          `json:"company_name"`
	Email          string          `json:"email" binding:"required,email"`
	Phone          string          `json:"phone" binding:"required,min=7"`
	Address        AddressRequest  `json:"address"`
	BillingAddress *AddressRequest `json:"billing_address"`
	Balance        float64         `json:"balance"`
	Properties     int             `json:"properties" binding:"gte=0"`
	Tags           []string        `json:"tags"`
	Notes          string          `json:"notes"`
}

func (r CreateClientRequest) ToInput() usecase.ClientInput {
	addr := r.Address.ToAddress()
	return usecase.ClientInput{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		CompanyName:    r.CompanyName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        *addr,
		BillingAddress: r.BillingAddress.ToAddress(),
		Balance:        decimal.NewFromFloat(r.Balance),
		Properties:     r.Properties,
		Tags:           r.Tags,
		Notes:          r.Notes,
	}
}

type UpdateClientRequest struct {
	FirstName      *string         `json:"first_name" binding:"omitempty,min=2"`
	LastName       *string         `json:"last_name" binding:"omitempty,min=2"`
	CompanyName    *string         `json:"company_name"`
	Email          *string         `json:"email" binding:"omitempty,email"`
	Phone          *string         `json:"phone" binding:"omitempty,min=7"`
	Address        *AddressRequest `json:"address"`
	BillingAddress *AddressRequest `json:"billing_address"`
	Balance        *float64        `json:"balance"`
	Properties     *int            `json:"properties" binding:"omitempty,gte=0"`
	Tags           *[]string       `json:"tags"`
	Notes          *string         `json:"notes"`
}

func (r UpdateClientRequest) ToPatch() usecase.ClientPatch {
	return usecase.ClientPatch{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		CompanyName:    r.CompanyName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address.ToAddress(),
		BillingAddress: r.BillingAddress.ToAddress(),
		Balance:        decimalPtr(r.Balance),
		Properties:     r.Properties,
		Tags:           r.Tags,
		Notes:          r.Notes,
	}
}
