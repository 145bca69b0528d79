package finance

import (
	"math/rand"
	"testing"

	"taskloop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(qty, price string) entities.LineItem {
	return entities.LineItem{Quantity: d(qty), UnitPrice: d(price)}
}

func TestCalculate_TaxExample(t *testing.T) {
	res := Calculate([]entities.LineItem{item("2", "10"), item("1", "5")}, nil, d("10"))

	if !res.Subtotal.Equal(d("25")) {
		t.Fatalf("expected subtotal 25, got %s", res.Subtotal)
	}
	if !res.TaxAmount.Equal(d("2.50")) {
		t.Fatalf("expected tax 2.50, got %s", res.TaxAmount)
	}
	if !res.Total.Equal(d("27.50")) {
		t.Fatalf("expected total 27.50, got %s", res.Total)
	}
	if !res.LineItems[0].Total.Equal(d("20")) || !res.LineItems[1].Total.Equal(d("5")) {
		t.Fatalf("unexpected line totals: %+v", res.LineItems)
	}
}

func TestCalculate_PercentageDiscount(t *testing.T) {
	discount := &entities.Discount{Type: entities.DiscountTypePercentage, Value: d("20")}
	res := Calculate([]entities.LineItem{item("1", "100")}, discount, decimal.Zero)

	if !res.DiscountAmount.Equal(d("20")) {
		t.Fatalf("expected discount 20, got %s", res.DiscountAmount)
	}
	if !res.TaxableAmount.Equal(d("80")) {
		t.Fatalf("expected taxable base 80, got %s", res.TaxableAmount)
	}
	if !res.Total.Equal(d("80")) {
		t.Fatalf("expected total 80, got %s", res.Total)
	}
}

func TestCalculate_DiscountAppliedBeforeTax(t *testing.T) {
	discount := &entities.Discount{Type: entities.DiscountTypeFixed, Value: d("15")}
	res := Calculate([]entities.LineItem{item("3", "35")}, discount, d("8.25"))

	// (105 - 15) * 8.25% = 7.425 -> 7.43
	if !res.TaxAmount.Equal(d("7.43")) {
		t.Fatalf("expected tax 7.43, got %s", res.TaxAmount)
	}
	if !res.Total.Equal(d("97.43")) {
		t.Fatalf("expected total 97.43, got %s", res.Total)
	}
}

func TestDiscountAmount(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		discount *entities.Discount
		want     string
	}{
		{name: "nil", subtotal: "100", discount: nil, want: "0"},
		{name: "fixed", subtotal: "100", discount: &entities.Discount{Type: entities.DiscountTypeFixed, Value: d("12.5")}, want: "12.5"},
		{name: "fixed capped", subtotal: "10", discount: &entities.Discount{Type: entities.DiscountTypeFixed, Value: d("50")}, want: "10"},
		{name: "percentage capped", subtotal: "10", discount: &entities.Discount{Type: entities.DiscountTypePercentage, Value: d("150")}, want: "10"},
		{name: "negative", subtotal: "10", discount: &entities.Discount{Type: entities.DiscountTypeFixed, Value: d("-5")}, want: "0"},
		{name: "unknown type", subtotal: "10", discount: &entities.Discount{Type: "bogus", Value: d("5")}, want: "0"},
		{name: "zero subtotal", subtotal: "0", discount: &entities.Discount{Type: entities.DiscountTypePercentage, Value: d("10")}, want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DiscountAmount(d(tc.subtotal), tc.discount)
			if !got.Equal(d(tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

// Random add/edit/remove sequences keep subtotal and total consistent.
func TestCalculate_InvariantsUnderEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	discounts := []*entities.Discount{
		nil,
		{Type: entities.DiscountTypePercentage, Value: d("12.5")},
		{Type: entities.DiscountTypeFixed, Value: d("30")},
	}

	var items []entities.LineItem
	for step := 0; step < 500; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || len(items) == 0:
			items = append(items, entities.LineItem{
				Quantity:  decimal.NewFromInt(int64(rng.Intn(20) + 1)),
				UnitPrice: decimal.New(int64(rng.Intn(100000)), -2),
			})
		case op == 1:
			i := rng.Intn(len(items))
			items[i].Quantity = decimal.New(int64(rng.Intn(400)+1), -1)
		default:
			i := rng.Intn(len(items))
			items = append(items[:i], items[i+1:]...)
		}

		discount := discounts[rng.Intn(len(discounts))]
		rate := decimal.New(int64(rng.Intn(2500)), -2)
		res := Calculate(items, discount, rate)

		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(it.Quantity.Mul(it.UnitPrice).Round(2))
		}
		if !res.Subtotal.Equal(sum) {
			t.Fatalf("step %d: subtotal %s != sum %s", step, res.Subtotal, sum)
		}
		if !res.Total.Equal(res.Subtotal.Sub(res.DiscountAmount).Add(res.TaxAmount)) {
			t.Fatalf("step %d: total %s inconsistent", step, res.Total)
		}
		if res.DiscountAmount.IsNegative() || res.DiscountAmount.GreaterThan(res.Subtotal) {
			t.Fatalf("step %d: discount %s out of range", step, res.DiscountAmount)
		}
	}
}

func TestBalance(t *testing.T) {
	if !Balance(d("100"), d("40")).Equal(d("60")) {
		t.Fatalf("expected 60")
	}
	if !Balance(d("100"), d("120")).Equal(decimal.Zero) {
		t.Fatalf("expected overpayment to clamp to zero")
	}
}
