package response

import (
	"time"

	"taskloop/internal/domain/entities"
)

type ClientResponse struct {
	ID             string            `json:"id"`
	DisplayName    string            `json:"display_name"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	CompanyName    string            `json:"company_name,omitempty"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Address        entities.Address  `json:"address"`
	BillingAddress *entities.Address `json:"billing_address,omitempty"`
	Balance        float64           `json:"balance"`
	Properties     int               `json:"properties"`
	Tags           []string          `json:"tags"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func FromClient(c entities.Client) ClientResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return ClientResponse{
		ID:             c.ID,
		DisplayName:    c.DisplayName(),
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		CompanyName:    c.CompanyName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		BillingAddress: c.BillingAddress,
		Balance:        money(c.Balance),
		Properties:     c.Properties,
		Tags:           tags,
		Notes:          c.Notes,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
