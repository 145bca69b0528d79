package request

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"
	"taskloop/pkg"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const dateOnly = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var dateLocation atomic.Pointer[time.Location]

// SetLocation sets where date-only body fields start their day. Nil resets
// it to UTC.
func SetLocation(loc *time.Location) {
	dateLocation.Store(loc)
}

// Location is the zone date-only values are parsed in.
func Location() *time.Location {
	if loc := dateLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// RegisterValidations installs the JSON field naming and the "date" rule on
// the validator gin binds with.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(pkg.JSONTagName)
	return v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
}

// ParseDate accepts YYYY-MM-DD (midnight in Location) or an RFC3339
// timestamp.
func ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, Location())
}

// ParseDateIn is ParseDate with date-only values placed at midnight in loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateOnly, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

func parseDateOrZero(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return ParseDate(s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type LineItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description" binding:"required,min=2"`
	Quantity    float64 `json:"quantity" binding:"gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		ID:          r.ID,
		Description: r.Description,
		Quantity:    decimal.NewFromFloat(r.Quantity),
		UnitPrice:   decimal.NewFromFloat(r.UnitPrice),
	}
}

func lineItemInputs(in []LineItemRequest) []usecase.LineItemInput {
	out := make([]usecase.LineItemInput, len(in))
	for i, it := range in {
		out[i] = it.ToInput()
	}
	return out
}

func lineItemInputsPtr(in *[]LineItemRequest) *[]usecase.LineItemInput {
	if in == nil {
		return nil
	}
	out := lineItemInputs(*in)
	return &out
}

type DiscountRequest struct {
	Type  string  `json:"type" binding:"required,oneof=percentage fixed"`
	Value float64 `json:"value" binding:"gte=0"`
}

func (r *DiscountRequest) ToDiscount() *entities.Discount {
	if r == nil {
		return nil
	}
	return &entities.Discount{Type: entities.DiscountType(r.Type), Value: decimal.NewFromFloat(r.Value)}
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

func (r *AddressRequest) ToAddress() *entities.Address {
	if r == nil {
		return nil
	}
	return &entities.Address{
		Street:  strings.TrimSpace(r.Street),
		City:    strings.TrimSpace(r.City),
		State:   strings.TrimSpace(r.State),
		ZipCode: strings.TrimSpace(r.ZipCode),
	}
}

func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
