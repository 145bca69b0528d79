package usecase

import (
	"context"
	"errors"
	"strings"

	"taskloop/internal/domain/entities"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrInvalidClient   = errors.New("invalid client")
)

type ClientInput struct {
	FirstName      string
	LastName       string
	CompanyName    string
	Email          string
	Phone          string
	Address        entities.Address
	BillingAddress *entities.Address
	Balance        decimal.Decimal
	Properties     int
	Tags           []string
	Notes          string
}

// ClientPatch merges every non-nil field into the stored client.
type ClientPatch struct {
	FirstName      *string
	LastName       *string
	CompanyName    *string
	Email          *string
	Phone          *string
	Address        *entities.Address
	BillingAddress *entities.Address
	Balance        *decimal.Decimal
	Properties     *int
	Tags           *[]string
	Notes          *string
}

// ClientFilter narrows List. Query matches name, company and email,
// case-insensitively.
type ClientFilter struct {
	Query string
}

type IClientUseCase interface {
	List(ctx context.Context, f ClientFilter) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, in ClientInput) (entities.Client, error)
	Update(ctx context.Context, id string, p ClientPatch) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) List(ctx context.Context, f ClientFilter) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return clients, nil
	}
	return filter(clients, func(c entities.Client) bool {
		haystack := strings.ToLower(strings.Join([]string{c.FirstName, c.LastName, c.CompanyName, c.Email}, " "))
		return strings.Contains(haystack, q)
	}), nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, in ClientInput) (entities.Client, error) {
	if strings.TrimSpace(in.FirstName) == "" && strings.TrimSpace(in.CompanyName) == "" {
		return entities.Client{}, ErrInvalidClient
	}
	if in.Properties < 0 {
		return entities.Client{}, ErrInvalidClient
	}

	ts := now()
	c := entities.Client{
		ID:             uuid.NewString(),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		CompanyName:    strings.TrimSpace(in.CompanyName),
		Email:          strings.TrimSpace(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Address:        in.Address,
		BillingAddress: in.BillingAddress,
		Balance:        in.Balance.Round(2),
		Properties:     in.Properties,
		Tags:           in.Tags,
		Notes:          in.Notes,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	logging.For("client", "create").WithField("client_id", created.ID).Info("client created")
	return created, nil
}

func (u *ClientUseCase) Update(ctx context.Context, id string, p ClientPatch) (entities.Client, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}

	if p.FirstName != nil {
		c.FirstName = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		c.LastName = strings.TrimSpace(*p.LastName)
	}
	if p.CompanyName != nil {
		c.CompanyName = strings.TrimSpace(*p.CompanyName)
	}
	if p.Email != nil {
		c.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.BillingAddress != nil {
		c.BillingAddress = p.BillingAddress
	}
	if p.Balance != nil {
		c.Balance = p.Balance.Round(2)
	}
	if p.Properties != nil {
		if *p.Properties < 0 {
			return entities.Client{}, ErrInvalidClient
		}
		c.Properties = *p.Properties
	}
	if p.Tags != nil {
		c.Tags = *p.Tags
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if c.FirstName == "" && c.CompanyName == "" {
		return entities.Client{}, ErrInvalidClient
	}
	c.UpdatedAt = now()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

// Delete removes only the client. Quotes, jobs, requests and invoices that
// reference it are left untouched.
func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}

	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrClientNotFound
	}
	logging.For("client", "delete").WithField("client_id", id).Info("client deleted")
	return nil
}
