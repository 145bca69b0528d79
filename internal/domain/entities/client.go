package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client is a customer of the business.
//
// Balance and Properties are denormalized counters. They only change through
// explicit edits; invoicing never touches them.
type Client struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	CompanyName    string          `json:"company_name,omitempty"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        Address         `json:"address"`
	BillingAddress *Address        `json:"billing_address,omitempty"`
	Balance        decimal.Decimal `json:"balance"`
	Properties     int             `json:"properties"`
	Tags           []string        `json:"tags,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (c Client) EntityID() string   { return c.ID }
func (c Client) Created() time.Time { return c.CreatedAt }

// DisplayName prefers the company name, falling back to the person's name.
func (c Client) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
